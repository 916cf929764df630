package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080", "test-key", "test-model")
	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("NewClient() BaseURL = %v, want http://localhost:8080", client.BaseURL)
	}
	if client.APIKey != "test-key" {
		t.Errorf("NewClient() APIKey = %v, want test-key", client.APIKey)
	}
	if client.Model != "test-model" {
		t.Errorf("NewClient() Model = %v, want test-model", client.Model)
	}
	if client.client == nil {
		t.Error("NewClient() client should not be nil")
	}
}

func TestClient_Chat(t *testing.T) {
	tests := []struct {
		name       string
		system     string
		user       string
		serverResp func(t *testing.T, w http.ResponseWriter, r *http.Request)
		wantReply  string
		wantErr    bool
	}{
		{
			name:   "successful chat",
			system: "You are a mood analysis expert.",
			user:   "Title: Day One",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST, got %s", r.Method)
				}
				if r.URL.Path != "/v1/chat/completions" {
					t.Errorf("expected /v1/chat/completions, got %s", r.URL.Path)
				}
				if !strings.Contains(r.Header.Get("Authorization"), "Bearer") {
					t.Error("missing Authorization header")
				}

				var req ChatRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("failed to decode request: %v", err)
				}
				if len(req.Messages) != 2 {
					t.Errorf("expected 2 messages, got %d", len(req.Messages))
				} else {
					if req.Messages[0].Role != "system" {
						t.Errorf("first message role = %s, want system", req.Messages[0].Role)
					}
					if req.Messages[1].Role != "user" {
						t.Errorf("second message role = %s, want user", req.Messages[1].Role)
					}
				}

				resp := ChatResponse{
					ID:     "test-id",
					Object: "chat.completion",
					Choices: []ChatChoice{
						{
							Index: 0,
							Message: ChatChoiceMessage{
								Role:    "assistant",
								Content: `{"mood_score": 8}`,
							},
							FinishReason: "stop",
						},
					},
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(resp)
			},
			wantReply: `{"mood_score": 8}`,
			wantErr:   false,
		},
		{
			name:   "system message omitted when empty",
			system: "",
			user:   "hello",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				var req ChatRequest
				_ = json.NewDecoder(r.Body).Decode(&req)
				if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
					t.Errorf("expected single user message, got %+v", req.Messages)
				}

				resp := ChatResponse{
					Choices: []ChatChoice{
						{Message: ChatChoiceMessage{Role: "assistant", Content: "hi"}},
					},
				}
				_ = json.NewEncoder(w).Encode(resp)
			},
			wantReply: "hi",
			wantErr:   false,
		},
		{
			name: "no choices returned",
			user: "hello",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				resp := ChatResponse{
					ID:      "test-id",
					Object:  "chat.completion",
					Choices: []ChatChoice{},
				}
				_ = json.NewEncoder(w).Encode(resp)
			},
			wantErr: true,
		},
		{
			name: "server error status",
			user: "hello",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("boom"))
			},
			wantErr: true,
		},
		{
			name: "malformed response body",
			user: "hello",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.serverResp(t, w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-key", "test-model")
			reply, err := client.Chat(context.Background(), tt.system, tt.user)

			if tt.wantErr {
				if err == nil {
					t.Error("Chat() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("Chat() unexpected error: %v", err)
			}
			if reply != tt.wantReply {
				t.Errorf("Chat() reply = %q, want %q", reply, tt.wantReply)
			}
		})
	}
}

func TestClient_Chat_NetworkError(t *testing.T) {
	// Point at a closed server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test-key", "test-model")
	_, err := client.Chat(context.Background(), "", "hello")
	if err == nil {
		t.Error("Chat() expected error for unreachable server, got nil")
	}
}
