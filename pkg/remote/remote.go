// Package remote syncs the habit list with the hosted row store. The
// save strategy is delete-then-reinsert: simple, correct for the single
// signed-in writer this app has, and not safe under concurrent
// multi-writer access.
package remote

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/streak/pkg/auth"
	"tableflip.dev/streak/pkg/habit"
)

// TokenSource yields the active session, if any.
type TokenSource interface {
	Current() (*auth.Session, bool)
}

// Adapter reads and writes the habit list through the row store.
type Adapter struct {
	Client  *Client
	Session TokenSource
}

// Fetch returns the remote list in sort_order, or an empty list when
// signed out or on error. Errors are logged, never propagated: a failed
// fetch renders as an empty account, not a crash.
func (a *Adapter) Fetch(ctx context.Context) []*habit.Habit {
	s, ok := a.session()
	if !ok {
		return []*habit.Habit{}
	}
	rows, err := a.Client.SelectHabits(ctx, s.AccessToken)
	if err != nil {
		fmt.Fprintf(os.Stderr, "remote: fetch habits: %v\n", err)
		return []*habit.Habit{}
	}

	habits := make([]*habit.Habit, 0, len(rows))
	now := habit.Now()
	for _, row := range rows {
		h := rowToHabit(row)
		h.Migrate(now)
		habits = append(habits, h)
	}
	return habits
}

// Save replaces the user's rows with the full list: delete every row
// owned by the current identity, then bulk-insert with sort_order set to
// the list index. Implements the persist save contract.
func (a *Adapter) Save(ctx context.Context, habits []*habit.Habit) error {
	s, ok := a.session()
	if !ok {
		// Signed out between dispatch and execution; nothing to do.
		return nil
	}
	if err := a.Client.DeleteHabits(ctx, s.AccessToken, s.UserID); err != nil {
		return fmt.Errorf("remote: clear rows: %w", err)
	}
	rows := make([]Row, 0, len(habits))
	for i, h := range habits {
		if h == nil {
			continue
		}
		rows = append(rows, habitToRow(h, s.UserID, i))
	}
	if err := a.Client.InsertHabits(ctx, s.AccessToken, rows); err != nil {
		return fmt.Errorf("remote: insert rows: %w", err)
	}
	return nil
}

func (a *Adapter) session() (*auth.Session, bool) {
	if a.Session == nil || a.Client == nil {
		return nil, false
	}
	return a.Session.Current()
}

func rowToHabit(row Row) *habit.Habit {
	return &habit.Habit{
		Title:          row.Title,
		Description:    row.Description,
		Color:          row.Color,
		IconID:         row.Icon,
		CreatedAt:      parseCreatedAt(row.Data.CreatedAt),
		CompletedDates: habit.NewDaySet(row.Data.CompletedDates...),
	}
}

func habitToRow(h *habit.Habit, userID string, index int) Row {
	return Row{
		UserID:      userID,
		Title:       h.Title,
		Description: h.Description,
		Icon:        h.IconID,
		Color:       h.Color,
		SortOrder:   index,
		Data: RowData{
			CompletedDates: h.CompletedDates.Keys(),
			CreatedAt:      h.CreatedAt.String(),
		},
	}
}

func parseCreatedAt(v string) habit.Timestamp {
	if v == "" {
		return habit.Timestamp{}
	}
	t, err := habit.ParseTime(v)
	if err != nil {
		return habit.Timestamp{}
	}
	return habit.Timestamp{Time: t}
}
