package snapshot

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type record struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	saved := []record{
		{SKU: "TV-100", Name: "Television", Quantity: 4},
		{SKU: "HP-220", Name: "Headphones", Quantity: 12},
	}
	if err := Save(path, saved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := Load[record](path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("round trip mismatch: saved %+v, loaded %+v", saved, loaded)
	}
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	loaded, err := Load[record](filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty result, got %d items", len(loaded))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load[record](path); err == nil {
		t.Error("expected error for corrupt snapshot")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "records.json")
	if err := Save(path, []record{{SKU: "X", Name: "x", Quantity: 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("snapshot file not written: %v", err)
	}
}

func TestSaveOverwritesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := Save(path, []record{{SKU: "OLD", Name: "old", Quantity: 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Save(path, []record{{SKU: "NEW", Name: "new", Quantity: 2}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := Load[record](path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 1 || loaded[0].SKU != "NEW" {
		t.Errorf("expected only the new snapshot, got %+v", loaded)
	}
}
