package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"

	"github.com/quayhold/repochat/internal/githubtools"
	"github.com/quayhold/repochat/internal/provider"
	"github.com/quayhold/repochat/internal/retry"
	"github.com/quayhold/repochat/memory"
)

// defaultMaxSteps bounds the tool loop; each step is one model call.
const defaultMaxSteps = 10

const defaultMaxTokens = 1024

// ToolCall records one tool invocation the model made during a turn.
type ToolCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// Result is the outcome of one chat turn: the answer text and the ordered
// list of tool invocations that produced it.
type Result struct {
	Text      string
	ToolCalls []ToolCall
}

// Agent binds a model client, a system prompt, and the GitHub tools.
type Agent struct {
	client    *anthropic.Client
	tools     []githubtools.ToolDefinition
	model     anthropic.Model
	maxTokens int64
	maxSteps  int
	retry     retry.Config
}

// Option configures an Agent.
type Option func(*Agent)

// WithModel overrides the default model.
func WithModel(model anthropic.Model) Option {
	return func(a *Agent) { a.model = model }
}

// WithMaxTokens overrides the per-response token cap.
func WithMaxTokens(n int64) Option {
	return func(a *Agent) { a.maxTokens = n }
}

// WithMaxSteps overrides the tool loop cap.
func WithMaxSteps(n int) Option {
	return func(a *Agent) { a.maxSteps = n }
}

// WithRetryConfig overrides the retry configuration for transient API errors.
func WithRetryConfig(cfg retry.Config) Option {
	return func(a *Agent) { a.retry = cfg }
}

// New builds an Agent around client and the given tools.
func New(client *anthropic.Client, tools []githubtools.ToolDefinition, opts ...Option) *Agent {
	a := &Agent{
		client:    client,
		tools:     tools,
		model:     provider.DefaultModel,
		maxTokens: defaultMaxTokens,
		maxSteps:  defaultMaxSteps,
		retry:     retry.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Agent) toolParams() []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(a.tools))
	for _, t := range a.tools {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}
	return out
}

// Run executes one chat turn: it sends history plus the user message, executes
// any tool calls the model requests, and loops until the model answers with
// text alone.
func (a *Agent) Run(ctx context.Context, message string, history []memory.Message) (*Result, error) {
	log := clog.FromContext(ctx)

	conv := memory.ToParams(memory.Window(history, memory.DefaultWindow))
	conv = append(conv, anthropic.NewUserMessage(anthropic.NewTextBlock(message)))

	params := anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:  conv,
		Tools:     a.toolParams(),
	}

	res := &Result{}
	for step := 0; step < a.maxSteps; step++ {
		msg, err := retry.Do(ctx, a.retry, "messages.new", provider.IsRetryable, func() (*anthropic.Message, error) {
			return a.client.Messages.New(ctx, params)
		})
		if err != nil {
			return nil, fmt.Errorf("calling model: %w", err)
		}

		var texts []string
		var toolResults []anthropic.ContentBlockParamUnion
		for _, block := range msg.Content {
			switch v := block.AsAny().(type) {
			case anthropic.TextBlock:
				if v.Text != "" {
					texts = append(texts, v.Text)
				}
			case anthropic.ToolUseBlock:
				// Pass raw JSON input through to the tool implementation.
				input := json.RawMessage(v.JSON.Input.Raw())
				res.ToolCalls = append(res.ToolCalls, ToolCall{Name: v.Name, Args: input})
				toolResults = append(toolResults, a.execTool(ctx, v.ID, v.Name, input))
			}
		}

		if len(toolResults) == 0 {
			res.Text = strings.Join(texts, "\n")
			log.With("steps", step+1).
				With("tool_calls", len(res.ToolCalls)).
				Info("Chat turn complete")
			return res, nil
		}

		// Provide tool results as a user message back to the model.
		params.Messages = append(params.Messages, msg.ToParam(), anthropic.NewUserMessage(toolResults...))
	}

	return nil, fmt.Errorf("tool loop did not settle within %d steps", a.maxSteps)
}

func (a *Agent) execTool(ctx context.Context, id, name string, input json.RawMessage) anthropic.ContentBlockParamUnion {
	log := clog.FromContext(ctx)

	var def *githubtools.ToolDefinition
	for i := range a.tools {
		if a.tools[i].Name == name {
			def = &a.tools[i]
			break
		}
	}
	if def == nil {
		log.With("tool", name).Error("Unknown tool requested")
		return anthropic.NewToolResultBlock(id, fmt.Sprintf("unknown tool: %q", name), true)
	}

	start := time.Now()
	out, err := def.Function(ctx, input)
	if err != nil {
		log.With("tool", name).
			With("duration", time.Since(start)).
			With("error", err.Error()).
			Warn("Tool execution failed")
		return anthropic.NewToolResultBlock(id, err.Error(), true)
	}

	log.With("tool", name).
		With("duration", time.Since(start)).
		With("output_size", len(out)).
		Info("Executed tool call")
	return anthropic.NewToolResultBlock(id, out, false)
}
