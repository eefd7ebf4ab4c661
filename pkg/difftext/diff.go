// Package difftext computes line-based unified diffs for CLI output.
package difftext

import (
	"fmt"
	"strings"
)

// LineKind indicates the type of diff line.
type LineKind int

const (
	// LineContext is an unchanged context line.
	LineContext LineKind = iota

	// LineAdd is a line added in the modified version.
	LineAdd

	// LineRemove is a line removed from the original version.
	LineRemove
)

// Line is a single line in a diff hunk.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is a contiguous region of changes with surrounding context.
type Hunk struct {
	// OrigStart and OrigCount locate the hunk in the original (1-based).
	OrigStart int
	OrigCount int

	// ModStart and ModCount locate the hunk in the modified version.
	ModStart int
	ModCount int

	Lines []Line
}

// Diff is a unified diff between original and modified content.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// contextLines is the number of context lines shown around changes.
const contextLines = 3

// Compute creates a unified diff between original and modified content.
// Returns nil if there are no changes.
func Compute(path string, original, modified []byte) *Diff {
	orig := splitLines(original)
	mod := splitLines(modified)

	ops := diffOps(orig, mod)

	changed := false
	for _, op := range ops {
		if op.kind != LineContext {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	d := &Diff{
		Path:  path,
		Hunks: groupHunks(ops),
	}
	for _, h := range d.Hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case LineAdd:
				d.Additions++
			case LineRemove:
				d.Deletions++
			}
		}
	}

	return d
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String renders the diff in unified format, without the git header.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			h.OrigStart, h.OrigCount, h.ModStart, h.ModCount)
		for _, l := range h.Lines {
			switch l.Kind {
			case LineContext:
				fmt.Fprintf(&b, " %s\n", l.Content)
			case LineAdd:
				fmt.Fprintf(&b, "+%s\n", l.Content)
			case LineRemove:
				fmt.Fprintf(&b, "-%s\n", l.Content)
			}
		}
	}

	return b.String()
}

// splitLines splits content into lines, removing a trailing newline's empty
// tail if present.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type op struct {
	kind    LineKind
	content string
}

// diffOps builds the full edit script between two line slices using an
// LCS table.
func diffOps(orig, mod []string) []op {
	lcs := lcsTable(orig, mod)

	var ops []op
	i, j := 0, 0
	for i < len(orig) && j < len(mod) {
		switch {
		case orig[i] == mod[j]:
			ops = append(ops, op{LineContext, orig[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, op{LineRemove, orig[i]})
			i++
		default:
			ops = append(ops, op{LineAdd, mod[j]})
			j++
		}
	}
	for ; i < len(orig); i++ {
		ops = append(ops, op{LineRemove, orig[i]})
	}
	for ; j < len(mod); j++ {
		ops = append(ops, op{LineAdd, mod[j]})
	}

	return ops
}

// lcsTable builds the suffix LCS-length table: lcs[i][j] is the LCS length
// of orig[i:] and mod[j:].
func lcsTable(orig, mod []string) [][]int {
	lcs := make([][]int, len(orig)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(mod)+1)
	}
	for i := len(orig) - 1; i >= 0; i-- {
		for j := len(mod) - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}
	return lcs
}

// groupHunks groups the edit script into hunks, merging changes separated by
// at most 2*contextLines unchanged lines.
func groupHunks(ops []op) []Hunk {
	type span struct{ start, end int }

	var spans []span
	inChange := false
	start := 0
	for idx, o := range ops {
		if o.kind != LineContext {
			if !inChange {
				start = idx
				inChange = true
			}
		} else if inChange {
			spans = append(spans, span{start, idx})
			inChange = false
		}
	}
	if inChange {
		spans = append(spans, span{start, len(ops)})
	}
	if len(spans) == 0 {
		return nil
	}

	// Merge nearby spans.
	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start-last.end <= contextLines*2 {
			last.end = s.end
		} else {
			merged = append(merged, s)
		}
	}

	var hunks []Hunk
	for _, s := range merged {
		hunks = append(hunks, buildHunk(ops, s.start, s.end))
	}
	return hunks
}

func buildHunk(ops []op, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	origStart, modStart := 1, 1
	for idx := 0; idx < start; idx++ {
		if ops[idx].kind != LineAdd {
			origStart++
		}
		if ops[idx].kind != LineRemove {
			modStart++
		}
	}

	h := Hunk{OrigStart: origStart, ModStart: modStart}
	for idx := start; idx < end; idx++ {
		o := ops[idx]
		h.Lines = append(h.Lines, Line{Kind: o.kind, Content: o.content})
		switch o.kind {
		case LineContext:
			h.OrigCount++
			h.ModCount++
		case LineRemove:
			h.OrigCount++
		case LineAdd:
			h.ModCount++
		}
	}
	return h
}
