package combi

import (
	"fmt"
	"unicode/utf8"
)

// Slice is the capability an input type has to provide for primitive parsers
// to operate on it. S is the input type itself, T is the type of its elements.
//
// Implementations are views: none of the operations may mutate the receiver or
// copy the underlying storage. Splitting a view yields independent views onto
// the same data.
//
// Text and Items implement Slice. Clients may implement it for their own input
// representations, e.g. cursors over token streams.
type Slice[S any, T any] interface {
	// Head returns the first element together with the remainder.
	// It returns false if the input is empty.
	Head() (T, S, bool)
	// Split returns the prefix of n elements together with the remainder.
	// It returns false if fewer than n elements are available.
	Split(n int) (S, S, bool)
	// Until returns the prefix of the receiver which ends where rest starts.
	// rest has to be a suffix of the receiver.
	Until(rest S) S
	// IsEmpty is true if there are no more elements.
	IsEmpty() bool
	// Offset is the storage position of the first element of the view within
	// the original input.
	Offset() int
}

// --- Text ------------------------------------------------------------------

// Text is a view onto a string. Elements are runes, not bytes; splitting
// respects UTF-8 boundaries. Offsets are byte positions.
type Text struct {
	src    string
	lo, hi int // bounds in src, as bytes index
}

var _ Slice[Text, rune] = Text{}

// TextOf creates a view spanning all of s.
func TextOf(s string) Text {
	return Text{src: s, hi: len(s)}
}

// Head is part of interface Slice.
func (t Text) Head() (rune, Text, bool) {
	if t.lo >= t.hi {
		return utf8.RuneError, t, false
	}
	r, w := utf8.DecodeRuneInString(t.src[t.lo:t.hi])
	return r, Text{src: t.src, lo: t.lo + w, hi: t.hi}, true
}

// Split is part of interface Slice. n counts runes.
func (t Text) Split(n int) (Text, Text, bool) {
	if n < 0 {
		return t, t, false
	}
	pos := t.lo
	for i := 0; i < n; i++ {
		if pos >= t.hi {
			return t, t, false
		}
		_, w := utf8.DecodeRuneInString(t.src[pos:t.hi])
		pos += w
	}
	return Text{src: t.src, lo: t.lo, hi: pos}, Text{src: t.src, lo: pos, hi: t.hi}, true
}

// Until is part of interface Slice.
func (t Text) Until(rest Text) Text {
	end := rest.lo
	if end < t.lo || end > t.hi {
		panic(fmt.Sprintf("combi: text view at %d is not a suffix of (%d…%d)", end, t.lo, t.hi))
	}
	return Text{src: t.src, lo: t.lo, hi: end}
}

// IsEmpty is part of interface Slice.
func (t Text) IsEmpty() bool {
	return t.lo >= t.hi
}

// Offset is part of interface Slice.
func (t Text) Offset() int {
	return t.lo
}

// Len returns the length of the view in bytes.
func (t Text) Len() int {
	return t.hi - t.lo
}

func (t Text) String() string {
	return t.src[t.lo:t.hi]
}

// --- Items -----------------------------------------------------------------

// Items is a view onto a slice of elements of type T, e.g. an array of tokens.
type Items[T any] struct {
	src    []T
	lo, hi int
}

// ItemsOf creates a view spanning all of the items.
// The items are not copied.
func ItemsOf[T any](items ...T) Items[T] {
	return Items[T]{src: items, hi: len(items)}
}

// Head is part of interface Slice.
func (it Items[T]) Head() (T, Items[T], bool) {
	if it.lo >= it.hi {
		var zero T
		return zero, it, false
	}
	return it.src[it.lo], Items[T]{src: it.src, lo: it.lo + 1, hi: it.hi}, true
}

// Split is part of interface Slice.
func (it Items[T]) Split(n int) (Items[T], Items[T], bool) {
	if n < 0 || n > it.hi-it.lo {
		return it, it, false
	}
	mid := it.lo + n
	return Items[T]{src: it.src, lo: it.lo, hi: mid}, Items[T]{src: it.src, lo: mid, hi: it.hi}, true
}

// Until is part of interface Slice.
func (it Items[T]) Until(rest Items[T]) Items[T] {
	end := rest.lo
	if end < it.lo || end > it.hi {
		panic(fmt.Sprintf("combi: items view at %d is not a suffix of (%d…%d)", end, it.lo, it.hi))
	}
	return Items[T]{src: it.src, lo: it.lo, hi: end}
}

// IsEmpty is part of interface Slice.
func (it Items[T]) IsEmpty() bool {
	return it.lo >= it.hi
}

// Offset is part of interface Slice.
func (it Items[T]) Offset() int {
	return it.lo
}

// Len returns the number of items in the view.
func (it Items[T]) Len() int {
	return it.hi - it.lo
}

// Slice returns the viewed items. Capacity is clipped, so appending to the
// result will not overwrite items beyond the view.
func (it Items[T]) Slice() []T {
	return it.src[it.lo:it.hi:it.hi]
}
