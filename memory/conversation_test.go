package memory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/google/go-cmp/cmp"

	"github.com/quayhold/repochat/memory"
)

func TestConversation_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "conv.json")

	in := []memory.Message{
		{Role: memory.RoleUser, Content: "hi"},
		{Role: memory.RoleAssistant, Content: "hello"},
	}
	if err := memory.SaveConversation(p, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := memory.LoadConversation(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestConversation_LoadMissing_ReturnsNil(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "does-not-exist.json")

	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("expected missing file in tempdir")
	}

	msgs, err := memory.LoadConversation(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if msgs != nil {
		t.Fatalf("expected nil slice for missing file, got %#v", msgs)
	}
}

func TestConversation_LoadInvalidJSON_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(p, []byte("{oops"), 0o664); err != nil {
		t.Fatalf("prep: %v", err)
	}
	if _, err := memory.LoadConversation(p); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestWindow_KeepsNewest(t *testing.T) {
	msgs := []memory.Message{
		{Role: memory.RoleUser, Content: "one"},
		{Role: memory.RoleAssistant, Content: "two"},
		{Role: memory.RoleUser, Content: "three"},
		{Role: memory.RoleAssistant, Content: "four"},
	}

	got := memory.Window(msgs, 2)
	want := msgs[2:]
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("window mismatch (-want +got):\n%s", diff)
	}
}

func TestWindow_NeverOpensOnAssistantTurn(t *testing.T) {
	msgs := []memory.Message{
		{Role: memory.RoleUser, Content: "q1"},
		{Role: memory.RoleAssistant, Content: "a1"},
		{Role: memory.RoleUser, Content: "q2"},
	}

	// A cut of 2 would land on the assistant reply; it must be skipped.
	got := memory.Window(msgs, 2)
	want := []memory.Message{{Role: memory.RoleUser, Content: "q2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("window mismatch (-want +got):\n%s", diff)
	}
}

func TestWindow_NoTrimWhenUnderMax(t *testing.T) {
	msgs := []memory.Message{{Role: memory.RoleUser, Content: "one"}}
	if got := memory.Window(msgs, 5); len(got) != 1 {
		t.Fatalf("got %d messages, want 1", len(got))
	}
	if got := memory.Window(msgs, 0); len(got) != 1 {
		t.Fatalf("max=0 should not trim; got %d messages", len(got))
	}
}

func TestToParams_PreservesOrderAndRoles(t *testing.T) {
	msgs := []memory.Message{
		{Role: memory.RoleUser, Content: "q1"},
		{Role: memory.RoleAssistant, Content: "a1"},
		{Role: "tool", Content: "odd role"}, // unknown roles become user turns
	}

	params := memory.ToParams(msgs)
	if len(params) != 3 {
		t.Fatalf("params: got %d want 3", len(params))
	}

	wantRoles := []anthropic.MessageParamRole{
		anthropic.MessageParamRoleUser,
		anthropic.MessageParamRoleAssistant,
		anthropic.MessageParamRoleUser,
	}
	for i, p := range params {
		if p.Role != wantRoles[i] {
			t.Errorf("param %d role: got %q want %q", i, p.Role, wantRoles[i])
		}
	}
}
