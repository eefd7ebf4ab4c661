package decoration_test

import (
	"errors"
	"testing"

	"github.com/moondown/moondown/pkg/decoration"
	"github.com/moondown/moondown/pkg/document"
	"github.com/moondown/moondown/pkg/syntax"
	"github.com/moondown/moondown/pkg/syntax/goldmarkquery"
)

func buildBullets(t *testing.T, content string, visible []document.Range) decoration.Set {
	t.Helper()

	snap := document.NewSnapshot([]byte(content))
	q := goldmarkquery.New(goldmarkquery.FlavorCommonMark).QueryFor(snap)
	return decoration.NewBulletBuilder().Build(snap, visible, q)
}

func fullRange(content string) []document.Range {
	return []document.Range{{From: 0, To: len(content)}}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("one widget per unordered item", func(t *testing.T) {
		t.Parallel()

		content := "- one\n- two\n- three\n"
		set := buildBullets(t, content, fullRange(content))

		if len(set) != 3 {
			t.Fatalf("got %d decorations, want 3: %+v", len(set), set)
		}
		// Each decoration covers the marker and its trailing space.
		if set[0].From != 0 || set[0].To != 2 {
			t.Errorf("first decoration range: got [%d, %d), want [0, 2)", set[0].From, set[0].To)
		}
		if set[1].From != 6 || set[1].To != 8 {
			t.Errorf("second decoration range: got [%d, %d), want [6, 8)", set[1].From, set[1].To)
		}
	})

	t.Run("nested items get depth-cycled glyphs", func(t *testing.T) {
		t.Parallel()

		content := "- a\n  - b\n    - c\n"
		set := buildBullets(t, content, fullRange(content))

		if len(set) != 3 {
			t.Fatalf("got %d decorations, want 3: %+v", len(set), set)
		}

		wantGlyphs := []rune{'●', '○', '■'}
		for i, d := range set {
			w, ok := d.Widget.(decoration.BulletWidget)
			if !ok {
				t.Fatalf("decoration %d has no bullet widget", i)
			}
			if w.Glyph() != wantGlyphs[i] {
				t.Errorf("decoration %d glyph: got %q, want %q", i, w.Glyph(), wantGlyphs[i])
			}
		}
	})

	t.Run("ordered items are not decorated", func(t *testing.T) {
		t.Parallel()

		content := "1. one\n2. two\n- bullet\n"
		set := buildBullets(t, content, fullRange(content))

		if len(set) != 1 {
			t.Fatalf("got %d decorations, want 1: %+v", len(set), set)
		}
		if _, ok := set[0].Widget.(decoration.BulletWidget); !ok {
			t.Error("surviving decoration should be the bullet widget")
		}
	})

	t.Run("items outside the viewport are skipped", func(t *testing.T) {
		t.Parallel()

		content := "- visible\n\nprose\n\n- hidden\n"
		set := buildBullets(t, content, []document.Range{{From: 0, To: 10}})

		if len(set) != 1 {
			t.Fatalf("got %d decorations, want 1: %+v", len(set), set)
		}
		if set[0].From != 0 {
			t.Errorf("decoration should cover the first item, got %+v", set[0])
		}
	})

	t.Run("overlapping viewport ranges do not duplicate", func(t *testing.T) {
		t.Parallel()

		content := "- one\n- two\n"
		visible := []document.Range{
			{From: 0, To: len(content)},
			{From: 0, To: len(content)},
		}
		set := buildBullets(t, content, visible)

		if len(set) != 2 {
			t.Fatalf("got %d decorations, want 2: %+v", len(set), set)
		}
	})

	t.Run("empty viewport yields empty set", func(t *testing.T) {
		t.Parallel()

		set := buildBullets(t, "- one\n", []document.Range{{From: 3, To: 3}})
		if len(set) != 0 {
			t.Errorf("got %+v, want empty", set)
		}
	})
}

// failingQuery simulates a host syntax layer that cannot answer.
type failingQuery struct{}

func (failingQuery) ListItemsIn(_, _ int) ([]syntax.NodeSpan, error) {
	return nil, errors.New("tree unavailable")
}

func (failingQuery) FencedCodeSpans() ([]syntax.NodeSpan, error) {
	return nil, errors.New("tree unavailable")
}

func TestBuildQueryFailure(t *testing.T) {
	t.Parallel()

	content := "- one\n"
	snap := document.NewSnapshot([]byte(content))
	set := decoration.NewBulletBuilder().Build(snap, fullRange(content), failingQuery{})

	if len(set) != 0 {
		t.Errorf("failing query should yield an empty set, got %+v", set)
	}
}
