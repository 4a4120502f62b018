package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pageza/larder/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, GenerationPath, r.URL.Path)
		assert.Equal(t, "Bearer anon", r.Header.Get("Authorization"))
		assert.Equal(t, "anon", r.Header.Get("apikey"))

		var req types.GenerationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"beans"}, req.Ingredients)

		_, _ = w.Write([]byte(`{"success":true,"recipes":"Chili","matchedFromDatabase":4}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL+"/", "anon", nil).Generate(context.Background(), types.GenerationRequest{Ingredients: []string{"beans"}})
	require.NoError(t, err)
	assert.Equal(t, "Chili", resp.Recipes)
	assert.Equal(t, 4, resp.MatchedFromDatabase)
}

func TestGenerateErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":"AI service requires payment. Please contact support."}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "", nil).Generate(context.Background(), types.GenerationRequest{Ingredients: []string{"x"}})
	require.Error(t, err)
	assert.True(t, IsAPIError(err))
	apiErr := err.(*APIError)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
	assert.Equal(t, "AI service requires payment. Please contact support.", apiErr.Error())
}

func TestGenerateNonJSONFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "", nil).Generate(context.Background(), types.GenerationRequest{Ingredients: []string{"x"}})
	require.Error(t, err)
	assert.False(t, IsAPIError(err))
}
