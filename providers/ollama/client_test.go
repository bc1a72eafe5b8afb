package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_GenerateContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req GenerateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "qwen3:4b", req.Model)
		assert.False(t, req.Stream)

		json.NewEncoder(w).Encode(GenerateResponse{
			Response: "mock completion",
			Done:     true,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "qwen3:4b")

	out, err := client.GenerateContent(context.Background(), "test prompt")
	assert.NoError(t, err)
	assert.Equal(t, "mock completion", out)
}

func TestClient_GenerateContent_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "qwen3:4b")

	_, err := client.GenerateContent(context.Background(), "test prompt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_GenerateContent_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "qwen3:4b")

	_, err := client.GenerateContent(context.Background(), "test prompt")
	assert.Error(t, err)
}
