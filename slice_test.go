package combi

import "testing"

func TestTextHead(t *testing.T) {
	text := TextOf("äb")
	r, rest, ok := text.Head()
	if !ok || r != 'ä' {
		t.Fatalf("expected head 'ä', got %q (ok=%v)", r, ok)
	}
	if rest.String() != "b" || rest.Offset() != 2 {
		t.Errorf("expected rest \"b\" at byte 2, got %q at %d", rest.String(), rest.Offset())
	}
	if text.String() != "äb" {
		t.Errorf("head must not change the original view, is %q", text.String())
	}
	if _, _, ok := TextOf("").Head(); ok {
		t.Errorf("expected empty text to have no head")
	}
}

func TestTextSplit(t *testing.T) {
	text := TextOf("äöü")
	prefix, rest, ok := text.Split(2)
	if !ok {
		t.Fatalf("expected split of 2 runes to succeed")
	}
	if prefix.String() != "äö" || rest.String() != "ü" {
		t.Errorf("expected äö|ü, got %s|%s", prefix, rest)
	}
	if _, _, ok := text.Split(4); ok {
		t.Errorf("expected split beyond end of input to fail")
	}
	if _, _, ok := text.Split(-1); ok {
		t.Errorf("expected split with negative length to fail")
	}
	if p, r, ok := text.Split(0); !ok || !p.IsEmpty() || r.String() != "äöü" {
		t.Errorf("expected empty prefix for split of 0")
	}
	if u := text.Until(rest); u.String() != "äö" {
		t.Errorf("expected Until to yield äö, is %q", u.String())
	}
}

func TestItemsViews(t *testing.T) {
	items := ItemsOf(1, 2, 3, 4)
	prefix, rest, ok := items.Split(3)
	if !ok || prefix.Len() != 3 || rest.Len() != 1 {
		t.Fatalf("expected 3|1 split, got %d|%d (ok=%v)", prefix.Len(), rest.Len(), ok)
	}
	if rest.Offset() != 3 {
		t.Errorf("expected rest to start at index 3, is %d", rest.Offset())
	}
	if _, _, ok := items.Split(5); ok {
		t.Errorf("expected split beyond end of input to fail")
	}
	clipped := append(prefix.Slice(), 99)
	if items.Slice()[3] != 4 {
		t.Errorf("appending to a view must not overwrite items behind it")
	}
	if len(clipped) != 4 {
		t.Errorf("expected 4 items after append, have %d", len(clipped))
	}
	h, tail, ok := rest.Head()
	if !ok || h != 4 || !tail.IsEmpty() {
		t.Errorf("expected head 4 with empty tail")
	}
}
