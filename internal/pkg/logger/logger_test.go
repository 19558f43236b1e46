package logger

import "testing"

func TestNew_RejectsUnknownLevel(t *testing.T) {
	if _, err := New("loud", true); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNew_AcceptsKnownLevels(t *testing.T) {
	for _, lvl := range []string{"", "debug", "INFO", "warn", "error"} {
		l, err := New(lvl, false)
		if err != nil {
			t.Fatalf("level %q: unexpected err: %v", lvl, err)
		}
		if l == nil {
			t.Fatalf("level %q: nil logger", lvl)
		}
	}
}

func TestComponent_NilParent(t *testing.T) {
	l := Component(nil, "x")
	if l == nil {
		t.Fatalf("expected nop logger")
	}
	l.Info("does not panic")
}

func TestTruncate(t *testing.T) {
	if got := Truncate("  hello  ", 10); got != "hello" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Truncate("héllo world", 5); got != "héllo..." {
		t.Fatalf("unexpected %q", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("unexpected %q", got)
	}
}
