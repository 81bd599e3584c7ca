package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tusharoffice40/Whole-X/pkg/config"
	pkgerrors "github.com/tusharoffice40/Whole-X/pkg/errors"
)

const testKeyEnv = "WHOLEX_TEST_GENAI_API_KEY"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(
		config.GenAIConfig{Model: "gemini-3-flash-preview"},
		WithBaseURL(server.URL),
		WithKeyEnv(testKeyEnv),
	)
}

func TestGenerateTextSuccess(t *testing.T) {
	t.Setenv(testKeyEnv, "test-key")

	var gotPath, gotKey string
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]string{{"text": "generated copy"}},
				},
			}},
		})
	})

	text, err := client.GenerateText(context.Background(), "write something")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "generated copy" {
		t.Fatalf("unexpected text: %q", text)
	}
	if gotPath != "/models/gemini-3-flash-preview:generateContent" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("expected key from environment, got %q", gotKey)
	}
	if !strings.Contains(mustJSON(t, gotBody), "write something") {
		t.Fatalf("prompt missing from request body: %v", gotBody)
	}
}

func TestGenerateTextMissingKeyStillAttempted(t *testing.T) {
	t.Setenv(testKeyEnv, "")

	attempted := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempted = true
		if r.URL.Query().Get("key") != "" {
			t.Errorf("expected empty credential, got %q", r.URL.Query().Get("key"))
		}
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GenerateText(context.Background(), "hello")
	if !attempted {
		t.Fatal("call must be attempted even with an absent credential")
	}
	if err == nil {
		t.Fatal("expected error from unauthorized response")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestGenerateTextUpstreamError(t *testing.T) {
	t.Setenv(testKeyEnv, "test-key")
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, err := client.GenerateText(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if !strings.Contains(err.Error(), "generate request failed") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	t.Setenv(testKeyEnv, "test-key")
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	text, err := client.GenerateText(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestGenerateTextBlankPrompt(t *testing.T) {
	client := NewClient(config.GenAIConfig{})
	_, err := client.GenerateText(context.Background(), "   ")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(raw)
}
