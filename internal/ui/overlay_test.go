package ui

import (
	"strings"
	"testing"
)

func TestComposeCentersOverlay(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat("aaaaaaaaaa\n", 5), "\n")
	out := compose(base, "XX", 10, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	want := "aaaaXXaaaa"
	if lines[2] != want {
		t.Fatalf("expected %q, got %q", want, lines[2])
	}
	for _, i := range []int{0, 1, 3, 4} {
		if lines[i] != "aaaaaaaaaa" {
			t.Fatalf("line %d disturbed: %q", i, lines[i])
		}
	}
}

func TestComposePadsShortBase(t *testing.T) {
	out := compose("ab", "XX", 6, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 6 {
			t.Fatalf("line %d not padded to width: %q", i, line)
		}
	}
	if !strings.Contains(lines[1], "XX") {
		t.Fatalf("overlay missing from middle line: %q", lines[1])
	}
}

func TestComposeMultiLineOverlay(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat("..........\n", 6), "\n")
	overlay := "┌──┐\n│ab│\n└──┘"
	out := compose(base, overlay, 10, 6)
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[1], "┌──┐") {
		t.Fatalf("top border missing: %q", lines[1])
	}
	if !strings.Contains(lines[2], "│ab│") {
		t.Fatalf("body missing: %q", lines[2])
	}
	if !strings.Contains(lines[3], "└──┘") {
		t.Fatalf("bottom border missing: %q", lines[3])
	}
	if !strings.HasPrefix(lines[2], "...") {
		t.Fatalf("base left of overlay lost: %q", lines[2])
	}
}
