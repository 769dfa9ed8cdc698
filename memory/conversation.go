package memory

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
)

// Message is one role-tagged chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultWindow is the number of recent messages kept in the model context.
const DefaultWindow = 50

// LoadConversation reads a persisted transcript. A missing file is not an
// error; it just means a fresh conversation.
func LoadConversation(path string) ([]Message, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var msgs []Message
	if err := json.Unmarshal(b, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// SaveConversation writes the transcript as indented JSON.
func SaveConversation(path string, msgs []Message) error {
	b, err := json.MarshalIndent(msgs, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Window returns the newest max messages, preserving order. max <= 0 means
// no trimming. The window never opens on an assistant turn: the Messages API
// expects conversations to start with a user message, so a cut that lands
// mid-pair is advanced past the orphaned assistant reply.
func Window(msgs []Message, max int) []Message {
	if max <= 0 || len(msgs) <= max {
		return msgs
	}
	out := msgs[len(msgs)-max:]
	for len(out) > 0 && out[0].Role == RoleAssistant {
		out = out[1:]
	}
	return out
}

// ToParams converts a transcript to Anthropic message params in order.
// Unknown roles are treated as user turns.
func ToParams(msgs []Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == RoleAssistant {
			out = append(out, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		} else {
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return out
}
