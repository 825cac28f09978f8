package icons

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLookupFallsBackToFirstEntry(t *testing.T) {
	c, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	first := c.All()[0]
	if got := c.Lookup("definitely-not-an-icon"); got.ID != first.ID {
		t.Fatalf("unknown id should fall back to %s, got %s", first.ID, got.ID)
	}
	if got := c.Lookup(""); got.ID != first.ID {
		t.Fatalf("blank id should fall back to %s, got %s", first.ID, got.ID)
	}
	if got := c.Lookup("book"); got.Symbol == "" {
		t.Fatalf("known id should resolve")
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	overrides := `[{"id":"book","symbol":"B","meaning":"custom"},{"id":"","symbol":"x"},{"id":"axe","symbol":"🪓"}]`
	if err := os.WriteFile(filepath.Join(dir, "icons.json"), []byte(overrides), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	c, err := Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := c.Lookup("book"); got.Symbol != "B" {
		t.Fatalf("override should replace built-in, got %q", got.Symbol)
	}
	if got := c.Lookup("axe"); got.Symbol != "🪓" {
		t.Fatalf("new override entry should resolve")
	}
}

func TestLoadCorruptOverrides(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "icons.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	c, err := Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("corrupt overrides must not fail the load: %v", err)
	}
	if len(c.All()) == 0 {
		t.Fatalf("built-ins should survive corrupt overrides")
	}
}
