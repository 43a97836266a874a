package util

import "testing"

func TestTruncateStringIsRuneAware(t *testing.T) {
	if got := TruncateString("Solução", 4); got != "Solu..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := TruncateString("curto", 10); got != "curto" {
		t.Fatalf("short strings must be unchanged, got %q", got)
	}
}

func TestPreviewCollapsesWhitespace(t *testing.T) {
	got := Preview("uma  ideia\n\tcom   quebras", 100)
	if got != "uma ideia com quebras" {
		t.Fatalf("unexpected preview: %q", got)
	}
}
