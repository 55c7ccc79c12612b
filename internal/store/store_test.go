package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/passgen/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestAddEntryCapsHistory(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		entry := model.HistoryEntry{
			Masked:      strings.Repeat("x", i+5),
			Score:       i * 20,
			Label:       model.LabelForScore(i * 20),
			EntropyBits: 40 + i,
			Mode:        model.ModeStandard,
			Length:      12,
			GeneratedAt: time.Unix(0, 0).Add(time.Duration(i) * time.Minute),
		}
		if _, err := st.AddEntry(ctx, entry); err != nil {
			t.Fatalf("add entry: %v", err)
		}
	}

	entries, err := st.ListEntries(ctx)
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(entries) != HistoryLimit {
		t.Fatalf("expected %d entries, got %d", HistoryLimit, len(entries))
	}
	for i, want := range []int{44, 43, 42} {
		if entries[i].EntropyBits != want {
			t.Fatalf("entry %d: expected entropy %d, got %d", i, want, entries[i].EntropyBits)
		}
	}
	if entries[0].Label != model.Strong || entries[0].Score != 80 {
		t.Fatalf("unexpected newest entry: %+v", entries[0])
	}
	if !entries[0].GeneratedAt.Equal(time.Unix(0, 0).Add(4 * time.Minute)) {
		t.Fatalf("timestamp not preserved: %v", entries[0].GeneratedAt)
	}
}

func TestListEntriesRoundTripsMode(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	entry := model.HistoryEntry{
		Masked:      "Cha•••••••e42!",
		Score:       75,
		Label:       model.Strong,
		EntropyBits: 33,
		Mode:        model.ModePassphrase,
		Length:      24,
		GeneratedAt: time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
	}
	id, err := st.AddEntry(ctx, entry)
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	entries, err := st.ListEntries(ctx)
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	got := entries[0]
	if !got.GeneratedAt.Equal(entry.GeneratedAt) {
		t.Fatalf("timestamp mismatch: %v", got.GeneratedAt)
	}
	got.GeneratedAt = time.Time{}
	entry.GeneratedAt = time.Time{}
	entry.ID = id
	if got != entry {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, entry)
	}
}

func TestClear(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if _, err := st.AddEntry(ctx, model.HistoryEntry{Masked: "ab•••cd", GeneratedAt: time.Now()}); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if err := st.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, err := st.ListEntries(ctx)
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty history, got %d", len(entries))
	}
}
