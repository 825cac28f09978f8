package habit

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// DefaultColor is applied when a habit is created without an explicit color.
const DefaultColor = "#f9736f"

var (
	ErrTitleRequired       = errors.New("habit: title required")
	ErrDescriptionRequired = errors.New("habit: description required")
	ErrBadColor            = errors.New("habit: color must be #rrggbb")
)

// Habit is a tracked recurring activity. The ID is assigned once at
// creation and is the only join key between the in-memory list, the UI,
// and remote rows.
type Habit struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Color          string    `json:"color"`
	IconID         string    `json:"iconId,omitempty"`
	CreatedAt      Timestamp `json:"createdAt"`
	CompletedDates DaySet    `json:"completedDates"`

	// Completions is the legacy keyed-map completion form. It is accepted
	// on read for migration and never written back.
	Completions map[string]bool `json:"completions,omitempty"`
}

// New builds a habit with a fresh id and creation time. Title and
// description must be non-empty; color defaults when blank.
func New(title, description, color, iconID string, now Timestamp) (*Habit, error) {
	h := &Habit{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(title),
		Description:    strings.TrimSpace(description),
		Color:          strings.TrimSpace(color),
		IconID:         strings.TrimSpace(iconID),
		CreatedAt:      now,
		CompletedDates: NewDaySet(),
	}
	if h.Color == "" {
		h.Color = DefaultColor
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// Validate checks the fields a user can edit.
func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(h.Description) == "" {
		return ErrDescriptionRequired
	}
	if !ValidColor(h.Color) {
		return ErrBadColor
	}
	return nil
}

// ValidColor reports whether s is a #rrggbb hex color.
func ValidColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Patch carries the editable fields for an update. Nil fields are left
// untouched; id, creation time, and completions are never patched.
type Patch struct {
	Title       *string
	Description *string
	Color       *string
	IconID      *string
}

// Apply copies the set fields of p onto h and revalidates.
func (h *Habit) Apply(p Patch) error {
	next := *h
	if p.Title != nil {
		next.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		next.Description = strings.TrimSpace(*p.Description)
	}
	if p.Color != nil {
		next.Color = strings.TrimSpace(*p.Color)
	}
	if p.IconID != nil {
		next.IconID = strings.TrimSpace(*p.IconID)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*h = next
	return nil
}

// Clone returns a deep copy so UI snapshots cannot alias store state.
func (h *Habit) Clone() *Habit {
	if h == nil {
		return nil
	}
	c := *h
	c.CompletedDates = h.CompletedDates.Clone()
	c.Completions = nil
	return &c
}

// Migrate rewrites the legacy completion map into the day set form and
// back-fills missing bookkeeping. It reports whether anything changed.
func (h *Habit) Migrate(now Timestamp) bool {
	changed := false
	if h.CompletedDates == nil {
		h.CompletedDates = NewDaySet()
		changed = true
	}
	if len(h.Completions) > 0 {
		for day, done := range h.Completions {
			if done {
				h.CompletedDates.Add(day)
			}
		}
		h.Completions = nil
		changed = true
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = now
		changed = true
	}
	if h.ID == "" {
		h.ID = uuid.NewString()
		changed = true
	}
	return changed
}
