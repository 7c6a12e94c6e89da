package llmextract

import "testing"

func TestStripMarkdownFences_PlainJSON(t *testing.T) {
	got := stripMarkdownFences(`{"summary":"ok"}`)
	if got != `{"summary":"ok"}` {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestStripMarkdownFences_CodeBlockWithPrefix(t *testing.T) {
	input := "Here is the extracted record:\n```json\n{\"summary\":\"ok\"}\n```"
	got := stripMarkdownFences(input)
	if got != `{"summary":"ok"}` {
		t.Errorf("expected fenced JSON stripped, got %q", got)
	}
}

func TestStripMarkdownFences_PrefatoryCommentaryWithoutFence(t *testing.T) {
	input := `Sure, here's the JSON: {"summary":"ok"}`
	got := stripMarkdownFences(input)
	if got != `{"summary":"ok"}` {
		t.Errorf("expected commentary stripped, got %q", got)
	}
}

func TestIndexOf(t *testing.T) {
	if got := indexOf("abcdef", "cd"); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := indexOf("abc", "xyz"); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
	if got := indexOf("abc", "abcdefg"); got != -1 {
		t.Errorf("expected -1 for substring longer than s, got %d", got)
	}
}

func TestNewClient_DefaultsModel(t *testing.T) {
	c := NewClient("key", "")
	if c.model != defaultModel {
		t.Errorf("expected default model, got %q", c.model)
	}
}

func TestNewClient_KeepsExplicitModel(t *testing.T) {
	c := NewClient("key", "claude-opus-4")
	if c.model != "claude-opus-4" {
		t.Errorf("expected explicit model preserved, got %q", c.model)
	}
}
