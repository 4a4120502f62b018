package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pageza/larder/backend/config"
	"github.com/pageza/larder/backend/internal/middleware"
	"github.com/pageza/larder/backend/internal/service"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGateway is a chat completions endpoint that answers with a fixed status
// and body and records what it received.
type fakeGateway struct {
	*httptest.Server
	calls    atomic.Int32
	lastBody service.ChatRequest
}

func newFakeGateway(t *testing.T, status int, body string) *fakeGateway {
	t.Helper()
	gw := &fakeGateway{}
	gw.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gw.calls.Add(1)
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gw.lastBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(gw.Close)
	return gw
}

func completion(text string) string {
	raw, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": text}}},
	})
	return string(raw)
}

// setupRouter wires the real services over db and a gateway at gatewayURL.
func setupRouter(t *testing.T, db *gorm.DB, gatewayURL, apiKey string) *gin.Engine {
	t.Helper()
	recipes := service.NewRecipeService(db)
	chat := service.NewChatClient(config.GatewayConfig{
		APIKey: apiKey,
		URL:    gatewayURL,
		Model:  config.DefaultModel,
	})

	router := gin.New()
	router.Use(middleware.Recovery())
	RegisterRoutes(router, Dependencies{
		DB:        db,
		Recipes:   recipes,
		Generator: service.NewGenerationService(recipes, chat),
	})
	return router
}

func setupRouterWith(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	RegisterRoutes(router, deps)
	return router
}

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(router http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generator", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v: %s", err, w.Body.String())
	}
	return body
}
