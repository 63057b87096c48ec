package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrompterDefaults(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("\n\n\n\n"), &out)

	if got := p.askURL(); got != "" {
		t.Errorf("askURL = %q, want empty", got)
	}
	if got := p.askFormat(); got != "1" {
		t.Errorf("askFormat = %q, want default 1", got)
	}
	if got := p.askDevice(); got != "mps" {
		t.Errorf("askDevice = %q, want default mps", got)
	}
	if got := p.askLanguage(); got != "" {
		t.Errorf("askLanguage = %q, want empty", got)
	}
}

func TestPrompterTrimsInput(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("  https://example.com/watch?v=abc  \n"), &out)
	if got := p.askURL(); got != "https://example.com/watch?v=abc" {
		t.Errorf("askURL = %q", got)
	}
}

func TestPrompterEOF(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader(""), &out)
	if got := p.askDevice(); got != "mps" {
		t.Errorf("askDevice on EOF = %q, want default", got)
	}
}

func TestPreviewTruncates(t *testing.T) {
	long := strings.Repeat("a", previewLimit+10)
	got := preview(long)
	if len([]rune(got)) != previewLimit+3 {
		t.Errorf("preview length = %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("preview should end with ellipsis")
	}
	if preview("short") != "short" {
		t.Error("short text should pass through")
	}
}
