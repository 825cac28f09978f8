package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/streak/pkg/habit"
)

// habitsKey is the single storage entry holding the serialized list.
const habitsKey = "habits"

// Local persists the habit list to disk through diskv.
type Local struct {
	d        *diskv.Diskv
	basePath string
}

// Open creates a Local rooted at the config's base path.
func Open(cfg Config) (*Local, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	return &Local{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// BasePath is the directory backing the store. Session and icon files
// live beside the habit list.
func (l *Local) BasePath() string {
	return l.basePath
}

// Load returns the stored list, or an empty list when nothing is stored
// or the payload is corrupt. Legacy records are migrated in place and the
// migrated form is written back once.
func (l *Local) Load(ctx context.Context) ([]*habit.Habit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := l.d.Read(habitsKey)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "persist: read habits: %v\n", err)
		}
		return []*habit.Habit{}, nil
	}

	var habits []*habit.Habit
	if err := json.Unmarshal(data, &habits); err != nil {
		fmt.Fprintf(os.Stderr, "persist: corrupt habit list, starting empty: %v\n", err)
		return []*habit.Habit{}, nil
	}

	migrated := false
	now := habit.Now()
	out := habits[:0]
	for _, h := range habits {
		if h == nil {
			migrated = true
			continue
		}
		if h.Migrate(now) {
			migrated = true
		}
		out = append(out, h)
	}
	if migrated {
		if err := l.Save(ctx, out); err != nil {
			fmt.Fprintf(os.Stderr, "persist: write migrated habits: %v\n", err)
		}
	}
	return out, nil
}

// Save serializes the full list. The write is atomic at the diskv layer.
func (l *Local) Save(ctx context.Context, habits []*habit.Habit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if habits == nil {
		habits = []*habit.Habit{}
	}
	data, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("persist: marshal habits: %w", err)
	}
	if err := l.d.Write(habitsKey, data); err != nil {
		return fmt.Errorf("persist: write habits: %w", err)
	}
	return nil
}
