package edit_test

import (
	"errors"
	"testing"

	"github.com/moondown/moondown/pkg/document"
	"github.com/moondown/moondown/pkg/edit"
)

func TestNewTransaction(t *testing.T) {
	t.Parallel()

	before := document.NewSnapshot([]byte("1. a\n1. b\n"))
	tx, err := edit.NewTransaction(before, []edit.Change{
		{From: 5, To: 6, Insert: "2"},
	}, edit.RenumberEffect())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(tx.After.Content) != "1. a\n2. b\n" {
		t.Errorf("after content: got %q", tx.After.Content)
	}
	if string(tx.Before.Content) != "1. a\n1. b\n" {
		t.Error("before snapshot must be untouched")
	}
	if !tx.DocChanged() {
		t.Error("transaction with changes should report DocChanged")
	}
	if !tx.HasEffect(edit.EffectRenumber) {
		t.Error("renumber effect should be present")
	}
}

func TestNewTransactionApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		changes []edit.Change
		want    string
	}{
		{
			name:    "no changes keeps content",
			content: "hello world",
			changes: nil,
			want:    "hello world",
		},
		{
			name:    "replacement",
			content: "hello world",
			changes: []edit.Change{{From: 0, To: 5, Insert: "hi"}},
			want:    "hi world",
		},
		{
			name:    "insertion",
			content: "hello world",
			changes: []edit.Change{{From: 5, To: 5, Insert: " beautiful"}},
			want:    "hello beautiful world",
		},
		{
			name:    "deletion",
			content: "hello world",
			changes: []edit.Change{{From: 5, To: 11, Insert: ""}},
			want:    "hello",
		},
		{
			name:    "unsorted batch applies in offset order",
			content: "abcdef",
			changes: []edit.Change{
				{From: 4, To: 6, Insert: "ZZ"},
				{From: 0, To: 2, Insert: "XX"},
				{From: 2, To: 4, Insert: "YY"},
			},
			want: "XXYYZZ",
		},
		{
			name:    "replace entire content",
			content: "hello",
			changes: []edit.Change{{From: 0, To: 5, Insert: "world"}},
			want:    "world",
		},
		{
			name:    "renumber digits only",
			content: "1. a\n1. b\n1. c\n",
			changes: []edit.Change{
				{From: 5, To: 6, Insert: "2"},
				{From: 10, To: 11, Insert: "3"},
			},
			want: "1. a\n2. b\n3. c\n",
		},
		{
			name:    "insertion at document end",
			content: "abc",
			changes: []edit.Change{{From: 3, To: 3, Insert: "d"}},
			want:    "abcd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			before := document.NewSnapshot([]byte(tt.content))
			tx, err := edit.NewTransaction(before, tt.changes)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := string(tx.After.Content); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewTransactionRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		changes      []edit.Change
		wantConflict bool
	}{
		{
			name:    "negative start",
			changes: []edit.Change{{From: -1, To: 2}},
		},
		{
			name:    "end before start",
			changes: []edit.Change{{From: 4, To: 2}},
		},
		{
			name:    "end past document",
			changes: []edit.Change{{From: 0, To: 99}},
		},
		{
			name: "overlapping changes",
			changes: []edit.Change{
				{From: 0, To: 3, Insert: "a"},
				{From: 2, To: 5, Insert: "b"},
			},
			wantConflict: true,
		},
	}

	before := document.NewSnapshot([]byte("hello"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := edit.NewTransaction(before, tt.changes)
			var cErr *edit.ChangeError
			if !errors.As(err, &cErr) {
				t.Fatalf("got err %v, want *ChangeError", err)
			}
			if tt.wantConflict != (cErr.Conflict != nil) {
				t.Errorf("Conflict = %v, want set: %v", cErr.Conflict, tt.wantConflict)
			}
		})
	}
}

func TestNewTransactionSortsWithoutMutating(t *testing.T) {
	t.Parallel()

	changes := []edit.Change{
		{From: 8, To: 9, Insert: "c"},
		{From: 0, To: 1, Insert: "a"},
		{From: 4, To: 5, Insert: "b"},
	}
	before := document.NewSnapshot([]byte("0123456789"))

	tx, err := edit.NewTransaction(before, changes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(tx.Changes); i++ {
		if tx.Changes[i].From < tx.Changes[i-1].From {
			t.Errorf("changes not sorted: %+v", tx.Changes)
		}
	}
	if changes[0].From != 8 {
		t.Error("caller's slice was mutated")
	}
}

func TestNewTransactionAdjacentChanges(t *testing.T) {
	t.Parallel()

	before := document.NewSnapshot([]byte("0123456789"))
	_, err := edit.NewTransaction(before, []edit.Change{
		{From: 0, To: 5, Insert: "a"},
		{From: 5, To: 8, Insert: "b"},
	})
	if err != nil {
		t.Fatalf("adjacent changes must not conflict: %v", err)
	}
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	b := edit.NewBuilder()
	b.ReplaceRange(0, 2, "XY")
	b.Insert(5, "!")
	b.Delete(7, 9)

	want := []edit.Change{
		{From: 0, To: 2, Insert: "XY"},
		{From: 5, To: 5, Insert: "!"},
		{From: 7, To: 9, Insert: ""},
	}

	if len(b.Changes) != len(want) {
		t.Fatalf("got %d changes, want %d", len(b.Changes), len(want))
	}
	for i := range want {
		if b.Changes[i] != want[i] {
			t.Errorf("change %d: got %+v, want %+v", i, b.Changes[i], want[i])
		}
	}
}

func TestNoOpTransaction(t *testing.T) {
	t.Parallel()

	snap := document.NewSnapshot([]byte("text"))
	tx := edit.NoOpTransaction(snap, edit.SetHighlightEffect(1, 3))

	if tx.DocChanged() {
		t.Error("no-op transaction must not report DocChanged")
	}
	if tx.After != snap || tx.Before != snap {
		t.Error("no-op transaction must keep the same snapshot on both sides")
	}

	eff, ok := tx.FindEffect(edit.EffectSetHighlight)
	if !ok {
		t.Fatal("highlight effect should be present")
	}
	if eff.From != 1 || eff.To != 3 {
		t.Errorf("effect range: got [%d, %d), want [1, 3)", eff.From, eff.To)
	}

	if _, ok := tx.FindEffect(edit.EffectRenumber); ok {
		t.Error("renumber effect should be absent")
	}
}
