package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"

	"github.com/quayhold/repochat/internal/agent"
	"github.com/quayhold/repochat/internal/githubtools"
	"github.com/quayhold/repochat/internal/provider"
	"github.com/quayhold/repochat/internal/retry"
	"github.com/quayhold/repochat/memory"
)

// ChatRequest is the body of POST /api/chat. Tokens are per-request: the
// Anthropic token is required, the GitHub token optional (anonymous access is
// rate-limited but works for public repositories).
type ChatRequest struct {
	Message        string           `json:"message"`
	GitHubToken    string           `json:"github_token,omitempty"`
	AnthropicToken string           `json:"anthropic_token"`
	History        []memory.Message `json:"history,omitempty"`
}

// ChatResponse carries the answer and the tools the model invoked to get it.
type ChatResponse struct {
	Response  string           `json:"response"`
	ToolCalls []agent.ToolCall `json:"tool_calls"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Config holds the server's agent settings.
type Config struct {
	Model     string
	MaxTokens int64
	MaxSteps  int
	// Retries is the retry count for model calls. 0 disables retries;
	// negative keeps the default.
	Retries   int
	StaticDir string
}

// AgentFactory builds the agent for one request. Swapped out in tests.
type AgentFactory func(ctx context.Context, anthropicToken, githubToken string) *agent.Agent

// Server handles chat requests.
type Server struct {
	cfg      Config
	newAgent AgentFactory
}

// New returns a Server. A nil factory gets the production wiring: fresh
// Anthropic and GitHub clients from the request's tokens.
func New(cfg Config, factory AgentFactory) *Server {
	if factory == nil {
		factory = func(ctx context.Context, anthropicToken, githubToken string) *agent.Agent {
			var opts []agent.Option
			if cfg.Model != "" {
				opts = append(opts, agent.WithModel(anthropic.Model(cfg.Model)))
			}
			if cfg.MaxTokens > 0 {
				opts = append(opts, agent.WithMaxTokens(cfg.MaxTokens))
			}
			if cfg.MaxSteps > 0 {
				opts = append(opts, agent.WithMaxSteps(cfg.MaxSteps))
			}
			if cfg.Retries >= 0 {
				rc := retry.DefaultConfig()
				rc.MaxRetries = cfg.Retries
				opts = append(opts, agent.WithRetryConfig(rc))
			}
			client := provider.NewClientWithKey(anthropicToken)
			tools := githubtools.New(ctx, githubToken).Registry()
			return agent.New(client, tools, opts...)
		}
	}
	return &Server{cfg: cfg, newAgent: factory}
}

// Handler returns the full HTTP handler: chat API plus static UI.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.Handle("GET /", http.FileServer(http.Dir(s.cfg.StaticDir)))
	return withCORS(mux)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := clog.FromContext(ctx)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.AnthropicToken == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Anthropic API token is required"})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}

	a := s.newAgent(ctx, req.AnthropicToken, req.GitHubToken)
	res, err := a.Run(ctx, req.Message, req.History)
	if err != nil {
		// Details go to the log, not the client.
		log.With("error", err.Error()).Error("Chat turn failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	toolCalls := res.ToolCalls
	if toolCalls == nil {
		toolCalls = []agent.ToolCall{}
	}
	writeJSON(w, http.StatusOK, ChatResponse{Response: res.Text, ToolCalls: toolCalls})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// withCORS allows any origin on the API, including preflight.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
