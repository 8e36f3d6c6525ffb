package state

import (
	"fmt"
	"testing"
)

func TestWithItemsSelectsFirst(t *testing.T) {
	l := WithItems([]string{"a", "b", "c"})
	if l.Index() != 0 {
		t.Fatalf("expected initial index 0, got %d", l.Index())
	}
	item, ok := l.Selected()
	if !ok || item != "a" {
		t.Fatalf("expected first item selected, got %q (ok=%v)", item, ok)
	}
}

func TestWithItemsEmptyHasNoSelection(t *testing.T) {
	l := WithItems([]string(nil))
	if l.Index() != -1 {
		t.Fatalf("expected index -1 for empty list, got %d", l.Index())
	}
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected no selection on empty list")
	}
	l.Next()
	l.Previous()
	if l.Index() != -1 {
		t.Fatalf("expected movement to be a no-op on empty list, got %d", l.Index())
	}
}

func TestNextWrapsAround(t *testing.T) {
	l := WithItems([]string{"a", "b", "c", "d", "e"})
	for i := 0; i < 4; i++ {
		l.Next()
	}
	if l.Index() != 4 {
		t.Fatalf("expected index 4 after four moves, got %d", l.Index())
	}
	l.Next()
	if l.Index() != 0 {
		t.Fatalf("expected wraparound to 0, got %d", l.Index())
	}
}

func TestPreviousWrapsAround(t *testing.T) {
	l := WithItems([]string{"a", "b", "c"})
	l.Previous()
	if l.Index() != 2 {
		t.Fatalf("expected wraparound to last index, got %d", l.Index())
	}
}

func TestNextCyclicClosure(t *testing.T) {
	for _, n := range []int{1, 2, 5, 12} {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		l := WithItems(items)
		l.Next()
		l.Next()
		start := l.Index()
		for i := 0; i < n; i++ {
			l.Next()
		}
		if l.Index() != start {
			t.Fatalf("len=%d: expected %d next() calls to return to index %d, got %d", n, n, start, l.Index())
		}
	}
}

func TestPreviousInvertsNext(t *testing.T) {
	l := WithItems([]string{"a", "b", "c", "d"})
	for i := 0; i < l.Len()+2; i++ {
		before := l.Index()
		l.Next()
		l.Previous()
		if l.Index() != before {
			t.Fatalf("step %d: expected next();previous() to restore index %d, got %d", i, before, l.Index())
		}
		l.Next()
	}
}

func TestAtBounds(t *testing.T) {
	l := WithItems([]string{"only"})
	if _, ok := l.At(1); ok {
		t.Fatalf("expected out-of-range lookup to fail")
	}
	item, ok := l.At(0)
	if !ok || item != "only" {
		t.Fatalf("unexpected item %q (ok=%v)", item, ok)
	}
}

func TestFilterChoices(t *testing.T) {
	choices := []string{"sda 512G disk", "sdb 1T disk", "nvme0n1 2T disk"}
	cases := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"nvme", 1},
		{"disk", 3},
		{"zzz", 0},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("query=%q", tc.query), func(t *testing.T) {
			got := FilterChoices(choices, tc.query)
			if len(got) != tc.want {
				t.Fatalf("expected %d matches, got %#v", tc.want, got)
			}
		})
	}
}

func TestFilterChoicesSubstringFallback(t *testing.T) {
	choices := []string{"Loop Device", "USB Stick"}
	got := FilterChoices(choices, "usb")
	if len(got) != 1 || got[0] != "USB Stick" {
		t.Fatalf("expected substring fallback match, got %#v", got)
	}
}
