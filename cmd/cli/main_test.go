package main

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestChatLoop_QuitSentinel(t *testing.T) {
	var got []string
	run := func(ctx context.Context, message string) (string, error) {
		got = append(got, message)
		return "answer", nil
	}

	in := strings.NewReader("hello\nquit\nignored after quit\n")
	var out strings.Builder
	if err := chatLoop(context.Background(), in, &out, run); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(got) != 1 || got[0] != "hello" {
		t.Fatalf("turns: got %v want [hello]", got)
	}
	if !strings.Contains(out.String(), "answer") {
		t.Fatalf("answer not printed: %q", out.String())
	}
}

func TestChatLoop_QuitCaseInsensitive(t *testing.T) {
	run := func(ctx context.Context, message string) (string, error) {
		t.Fatalf("run should not be called, got %q", message)
		return "", nil
	}
	if err := chatLoop(context.Background(), strings.NewReader("  QUIT \n"), &strings.Builder{}, run); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestChatLoop_SkipsBlankLines(t *testing.T) {
	var turns int
	run := func(ctx context.Context, message string) (string, error) {
		turns++
		return "ok", nil
	}
	if err := chatLoop(context.Background(), strings.NewReader("\n   \nreal question\nquit\n"), &strings.Builder{}, run); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if turns != 1 {
		t.Fatalf("turns: got %d want 1", turns)
	}
}

func TestChatLoop_TurnErrorContinues(t *testing.T) {
	calls := 0
	run := func(ctx context.Context, message string) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("model unavailable")
		}
		return "recovered", nil
	}

	var out strings.Builder
	if err := chatLoop(context.Background(), strings.NewReader("one\ntwo\nquit\n"), &out, run); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls: got %d want 2", calls)
	}
	if !strings.Contains(out.String(), "model unavailable") {
		t.Fatalf("error not reported: %q", out.String())
	}
	if !strings.Contains(out.String(), "recovered") {
		t.Fatalf("second answer missing: %q", out.String())
	}
}

func TestChatLoop_EOFTerminates(t *testing.T) {
	run := func(ctx context.Context, message string) (string, error) { return "ok", nil }
	if err := chatLoop(context.Background(), strings.NewReader("no trailing quit"), &strings.Builder{}, run); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
