package decoration_test

import (
	"testing"

	"github.com/moondown/moondown/pkg/decoration"
)

func TestNewSet(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		if got := decoration.NewSet(nil); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("sorts by start offset", func(t *testing.T) {
		t.Parallel()

		set := decoration.NewSet([]decoration.Decoration{
			{From: 10, To: 12, Class: "b"},
			{From: 0, To: 2, Class: "a"},
			{From: 20, To: 22, Class: "c"},
		})

		if len(set) != 3 {
			t.Fatalf("got %d decorations, want 3", len(set))
		}
		for i := 1; i < len(set); i++ {
			if set[i].From < set[i-1].To {
				t.Errorf("set not ordered: %+v", set)
			}
		}
		if set[0].Class != "a" || set[1].Class != "b" || set[2].Class != "c" {
			t.Errorf("wrong order: %+v", set)
		}
	})

	t.Run("drops overlapping keeping the earlier", func(t *testing.T) {
		t.Parallel()

		set := decoration.NewSet([]decoration.Decoration{
			{From: 0, To: 5, Class: "keep"},
			{From: 3, To: 8, Class: "drop"},
			{From: 5, To: 9, Class: "adjacent-ok"},
		})

		if len(set) != 2 {
			t.Fatalf("got %d decorations, want 2: %+v", len(set), set)
		}
		if set[0].Class != "keep" || set[1].Class != "adjacent-ok" {
			t.Errorf("wrong survivors: %+v", set)
		}
	})
}

func TestMerge(t *testing.T) {
	t.Parallel()

	bullets := decoration.NewSet([]decoration.Decoration{
		{From: 0, To: 2, Class: "bullet"},
		{From: 10, To: 12, Class: "bullet"},
	})
	highlight := decoration.NewSet([]decoration.Decoration{
		{From: 4, To: 8, Class: "highlight"},
	})

	merged := bullets.Merge(highlight)
	if len(merged) != 3 {
		t.Fatalf("got %d decorations, want 3", len(merged))
	}
	if merged[1].Class != "highlight" {
		t.Errorf("highlight should sort between bullets: %+v", merged)
	}

	if got := bullets.Merge(nil); len(got) != 2 {
		t.Errorf("merging nil should return the receiver, got %+v", got)
	}
	if got := decoration.Set(nil).Merge(highlight); len(got) != 1 {
		t.Errorf("merging into nil should return the other set, got %+v", got)
	}
}

func TestBulletWidget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		indent     string
		wantGlyph  rune
		wantClass  string
		wantRender string
	}{
		{name: "level zero", indent: "", wantGlyph: '●', wantClass: "md-bullet-0", wantRender: "● "},
		{name: "level one", indent: "  ", wantGlyph: '○', wantClass: "md-bullet-1", wantRender: "  ○ "},
		{name: "level two", indent: "    ", wantGlyph: '■', wantClass: "md-bullet-2", wantRender: "    ■ "},
		{name: "level three wraps to first glyph", indent: "      ", wantGlyph: '●', wantClass: "md-bullet-0", wantRender: "      ● "},
		{name: "tab indent", indent: "\t", wantGlyph: '○', wantClass: "md-bullet-1", wantRender: "\t○ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := decoration.NewBulletWidget(tt.indent)
			if w.Glyph() != tt.wantGlyph {
				t.Errorf("glyph: got %q, want %q", w.Glyph(), tt.wantGlyph)
			}
			if w.Class != tt.wantClass {
				t.Errorf("class: got %q, want %q", w.Class, tt.wantClass)
			}
			if got := w.Render(); got != tt.wantRender {
				t.Errorf("render: got %q, want %q", got, tt.wantRender)
			}
		})
	}
}

func TestBulletWidgetEq(t *testing.T) {
	t.Parallel()

	a := decoration.NewBulletWidget("  ")
	b := decoration.NewBulletWidget("  ")
	c := decoration.NewBulletWidget("    ")

	if !a.Eq(b) {
		t.Error("widgets with identical indent must be interchangeable")
	}
	if a.Eq(c) {
		t.Error("widgets at different levels must not be interchangeable")
	}

	// Same level, different raw indentation.
	d := decoration.NewBulletWidget("\t")
	if a.Eq(d) {
		t.Error("same level but different indent text must not be interchangeable")
	}
}
