package mocks

import (
	"context"

	"github.com/pageza/larder/backend/internal/service"
	"github.com/pageza/larder/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockChatCompleter is a mock chat gateway client
type MockChatCompleter struct {
	mock.Mock
}

// CompleteChat mocks the CompleteChat method
func (m *MockChatCompleter) CompleteChat(ctx context.Context, messages []service.Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

// MockGenerator is a mock generation service
type MockGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockGenerator) Generate(ctx context.Context, req types.GenerationRequest) (*service.GenerationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerationResult), args.Error(1)
}
