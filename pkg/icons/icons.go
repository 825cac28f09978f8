// Package icons resolves habit icon identifiers to renderable glyphs.
package icons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Icon is one catalog entry.
type Icon struct {
	ID      string `json:"id"`
	Symbol  string `json:"symbol"`
	Meaning string `json:"meaning"`
}

func builtin() []Icon {
	return []Icon{
		{ID: "spark", Symbol: "✦", Meaning: "general habit"},
		{ID: "book", Symbol: "📖", Meaning: "reading"},
		{ID: "run", Symbol: "🏃", Meaning: "exercise"},
		{ID: "water", Symbol: "💧", Meaning: "hydration"},
		{ID: "sleep", Symbol: "🌙", Meaning: "sleep"},
		{ID: "meditate", Symbol: "🧘", Meaning: "mindfulness"},
		{ID: "write", Symbol: "✎", Meaning: "writing"},
		{ID: "music", Symbol: "♪", Meaning: "practice"},
		{ID: "leaf", Symbol: "🌿", Meaning: "outdoors"},
		{ID: "heart", Symbol: "♥", Meaning: "health"},
	}
}

// Catalog is an ordered icon set. The first entry doubles as the fallback
// for unknown or missing ids.
type Catalog struct {
	icons []Icon
	index map[string]int
}

// Load builds the catalog from the built-in set plus optional user
// overrides at <dir>/icons.json. Override entries that are malformed or
// empty are dropped, not errored; the catalog is usable even when the
// overrides file is unreadable. Loading is cheap but callers treat it as
// an asynchronous prerequisite and gate the first render on it.
func Load(ctx context.Context, dir string) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	icons := builtin()

	if dir != "" {
		extra, err := readOverrides(filepath.Join(dir, "icons.json"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "icons: overrides: %v\n", err)
		}
		icons = append(icons, extra...)
	}

	c := &Catalog{icons: make([]Icon, 0, len(icons)), index: make(map[string]int, len(icons))}
	for _, ic := range icons {
		if ic.ID == "" || ic.Symbol == "" {
			continue
		}
		if at, seen := c.index[ic.ID]; seen {
			// Later entries win so user overrides can replace built-ins.
			c.icons[at] = ic
			continue
		}
		c.index[ic.ID] = len(c.icons)
		c.icons = append(c.icons, ic)
	}
	if len(c.icons) == 0 {
		return nil, errors.New("icons: empty catalog")
	}
	return c, nil
}

func readOverrides(path string) ([]Icon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var icons []Icon
	if err := json.Unmarshal(data, &icons); err != nil {
		return nil, err
	}
	return icons, nil
}

// Lookup resolves an id, falling back to the catalog's first entry when
// the id is unknown or blank.
func (c *Catalog) Lookup(id string) Icon {
	if at, ok := c.index[id]; ok {
		return c.icons[at]
	}
	return c.icons[0]
}

// All returns the catalog in order.
func (c *Catalog) All() []Icon {
	out := make([]Icon, len(c.icons))
	copy(out, c.icons)
	return out
}
