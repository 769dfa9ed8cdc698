// Command cli is an interactive chat loop over the repository agent.
// It reads lines from stdin until the quit sentinel and persists the
// transcript between runs.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"

	"github.com/quayhold/repochat/internal/agent"
	"github.com/quayhold/repochat/internal/githubtools"
	"github.com/quayhold/repochat/internal/provider"
	"github.com/quayhold/repochat/memory"
)

const quitSentinel = "quit"

type config struct {
	GitHubToken string `env:"GITHUB_TOKEN"`
	PersistPath string `env:"CONVERSATION_PATH,default=conversation.json"`
}

// turnFunc executes one chat turn and returns the assistant's answer.
type turnFunc func(ctx context.Context, message string) (string, error)

// chatLoop reads lines from in until EOF, context cancellation, or the quit
// sentinel (case-insensitive). Blank lines are skipped; turn errors are
// reported and the loop continues.
func chatLoop(ctx context.Context, in io.Reader, out io.Writer, run turnFunc) error {
	scanner := bufio.NewScanner(in)

	// stdin reader goroutine -> lines into channel, so Ctrl-C interrupts
	// a blocked read.
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(out, "\u001b[94mYou\u001b[0m: ")
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
			if !ok {
				return scanner.Err()
			}
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, quitSentinel) {
			return nil
		}

		answer, err := run(ctx, line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "\u001b[93mAgent\u001b[0m: %s\n", answer)
	}
}

func main() {
	// Basic env check (SDK also reads the API key).
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		fmt.Println("Missing ANTHROPIC_API_KEY; export it before running.")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	log := clog.FromContext(ctx)

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		log.With("error", err.Error()).Error("Processing config")
		os.Exit(1)
	}

	history, err := memory.LoadConversation(cfg.PersistPath)
	if err != nil {
		log.With("error", err.Error()).Warn("Failed to load persisted conversation")
	}

	client := provider.NewClient()
	tools := githubtools.New(ctx, cfg.GitHubToken).Registry()
	a := agent.New(client, tools)

	run := func(ctx context.Context, message string) (string, error) {
		res, err := a.Run(ctx, message, history)
		if err != nil {
			return "", err
		}
		history = append(history,
			memory.Message{Role: memory.RoleUser, Content: message},
			memory.Message{Role: memory.RoleAssistant, Content: res.Text},
		)
		if err := memory.SaveConversation(cfg.PersistPath, history); err != nil {
			log.With("error", err.Error()).Warn("Failed to save conversation")
		}
		return res.Text, nil
	}

	fmt.Printf("GitHub repository chat (type %q to exit)\n", quitSentinel)
	if err := chatLoop(ctx, os.Stdin, os.Stdout, run); err != nil {
		log.With("error", err.Error()).Warn("Stdin read error")
	}
}
