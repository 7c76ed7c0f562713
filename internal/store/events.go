package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/skytouch/internal/gesture"
)

// EventKind names a discrete trackpad event in the log.
type EventKind string

const (
	EventClick       EventKind = "click"
	EventRightClick  EventKind = "right_click"
	EventDoubleClick EventKind = "double_click"
	EventScroll      EventKind = "scroll"
	EventSwipe       EventKind = "swipe"
)

// Event is one logged trackpad event.
type Event struct {
	ID        string            `json:"id"`
	Mode      gesture.Mode      `json:"mode"`
	Kind      EventKind         `json:"kind"`
	Direction gesture.Direction `json:"direction"`
	At        time.Time         `json:"at"`
}

// EventRepository provides access to the gesture event log.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Insert logs a new event. A missing ID is filled with a fresh UUID and a
// zero timestamp with the current time.
func (r *EventRepository) Insert(e *Event) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}
	if e.Direction == "" {
		e.Direction = gesture.DirectionNone
	}

	_, err := r.db.Exec(
		`INSERT INTO gesture_events (id, mode, kind, direction, at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, string(e.Mode), string(e.Kind), string(e.Direction), e.At,
	)
	return err
}

// ListRecent retrieves the most recent events, newest first.
func (r *EventRepository) ListRecent(limit int) ([]*Event, error) {
	rows, err := r.db.Query(
		`SELECT id, mode, kind, direction, at FROM gesture_events
		 ORDER BY at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		var mode, kind, direction string

		if err := rows.Scan(&e.ID, &mode, &kind, &direction, &e.At); err != nil {
			return nil, err
		}

		e.Mode = gesture.Mode(mode)
		e.Kind = EventKind(kind)
		e.Direction = gesture.Direction(direction)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// PruneBefore deletes events older than the cutoff and reports how many
// rows were removed.
func (r *EventRepository) PruneBefore(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM gesture_events WHERE at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
