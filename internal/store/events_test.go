package store

import (
	"testing"
	"time"

	"github.com/ayusman/skytouch/internal/gesture"
)

func TestEvents_InsertFillsDefaults(t *testing.T) {
	events := newTestStore(t).Events()

	e := &Event{Mode: gesture.ModeClick, Kind: EventClick}
	if err := events.Insert(e); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	if e.ID == "" {
		t.Error("Insert should assign an ID")
	}
	if e.At.IsZero() {
		t.Error("Insert should assign a timestamp")
	}
	if e.Direction != gesture.DirectionNone {
		t.Errorf("Direction = %q, want none", e.Direction)
	}
}

func TestEvents_ListRecent(t *testing.T) {
	events := newTestStore(t).Events()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	kinds := []EventKind{EventClick, EventScroll, EventSwipe}
	for i, kind := range kinds {
		e := &Event{
			Mode:      gesture.ModeClick,
			Kind:      kind,
			Direction: gesture.DirectionLeft,
			At:        base.Add(time.Duration(i) * time.Second),
		}
		if err := events.Insert(e); err != nil {
			t.Fatalf("Insert() error: %v", err)
		}
	}

	got, err := events.ListRecent(2)
	if err != nil {
		t.Fatalf("ListRecent() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListRecent(2) returned %d events", len(got))
	}
	// Newest first
	if got[0].Kind != EventSwipe || got[1].Kind != EventScroll {
		t.Errorf("order = (%s, %s), want (swipe, scroll)", got[0].Kind, got[1].Kind)
	}
	if got[0].Direction != gesture.DirectionLeft {
		t.Errorf("Direction = %q, want left", got[0].Direction)
	}
}

func TestEvents_PruneBefore(t *testing.T) {
	events := newTestStore(t).Events()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		e := &Event{
			Mode: gesture.ModeSwipe,
			Kind: EventSwipe,
			At:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := events.Insert(e); err != nil {
			t.Fatalf("Insert() error: %v", err)
		}
	}

	pruned, err := events.PruneBefore(base.Add(3 * time.Minute))
	if err != nil {
		t.Fatalf("PruneBefore() error: %v", err)
	}
	if pruned != 3 {
		t.Errorf("pruned %d rows, want 3", pruned)
	}

	remaining, err := events.ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent() error: %v", err)
	}
	if len(remaining) != 2 {
		t.Errorf("%d events remain, want 2", len(remaining))
	}
}
