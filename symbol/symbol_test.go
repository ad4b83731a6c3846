package symbol_test

import (
	"testing"

	"minilisp/symbol"
)

func TestInternIdempotent(t *testing.T) {
	tab := symbol.NewTable()
	a := tab.Intern("square")
	b := tab.Intern("square")
	if a != b {
		t.Errorf("expected equal handles, got %q and %q", a, b)
	}
	if tab.Len() != 1 {
		t.Errorf("expected 1 interned name, got %d", tab.Len())
	}
}

func TestInternCopiesText(t *testing.T) {
	// Simulate a reused input buffer: the canonical string must not
	// change when the buffer is overwritten.
	buf := []byte("abc")
	tab := symbol.NewTable()
	got := tab.Intern(string(buf[:]))
	buf[0] = 'x'
	if got != "abc" {
		t.Errorf("interned text changed with the source buffer: %q", got)
	}
}

func TestClear(t *testing.T) {
	tab := symbol.NewTable()
	tab.Intern("a")
	tab.Intern("b")
	tab.Intern("a")
	if tab.Len() != 2 {
		t.Errorf("expected 2 interned names, got %d", tab.Len())
	}
	tab.Clear()
	if tab.Len() != 0 {
		t.Errorf("expected empty table after clear, got %d", tab.Len())
	}
	tab.Intern("a")
	if tab.Len() != 1 {
		t.Errorf("expected table to be usable after clear, got %d", tab.Len())
	}
}
