package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleDoc = `{
	"algebra": {
		"description": "Equations",
		"niveaux": {
			"1": {"name": "Linear", "objectives": ["solve ax+b=c"], "example_functions": ["3x+5=17"]},
			"2": {"name": "Systems", "objectives": ["solve 2x2 systems"], "example_functions": ["x+y=7, 2x-y=2"]},
			"3": {"name": "Quadratics", "objectives": ["find the roots"], "example_functions": ["x^2-5x+6=0"]}
		}
	},
	"geometry": {
		"description": "Vectors",
		"niveaux": {
			"1": {"name": "Vectors", "objectives": ["compute AB"], "example_functions": ["A(1,2), B(4,6)"]}
		}
	}
}`

func TestParse_PreservesDeclarationOrder(t *testing.T) {
	c, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	keys := c.Keys()
	if len(keys) != 2 {
		t.Fatalf("len(Keys()) = %d, want 2", len(keys))
	}
	if keys[0] != "algebra" || keys[1] != "geometry" {
		t.Errorf("Keys() = %v, want [algebra geometry]", keys)
	}
}

func TestParse_RejectsNonContiguousLevels(t *testing.T) {
	doc := `{"algebra": {"description": "x", "niveaux": {"1": {"name": "a"}, "3": {"name": "c"}}}}`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("expected error for missing level 2, got nil")
	}
}

func TestParse_RejectsEmptyObjective(t *testing.T) {
	doc := `{"algebra": {"description": "x", "niveaux": {}}}`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("expected error for objective without levels, got nil")
	}
}

func TestParse_RejectsDuplicateKey(t *testing.T) {
	doc := `{
		"algebra": {"description": "x", "niveaux": {"1": {"name": "a"}}},
		"geometry": {"description": "y", "niveaux": {"1": {"name": "b"}}},
		"algebra": {"description": "z", "niveaux": {"1": {"name": "c"}}}
	}`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("expected error for duplicate objective key, got nil")
	}
}

func TestParse_RejectsNonObject(t *testing.T) {
	if _, err := Parse([]byte(`[1, 2]`)); err == nil {
		t.Error("expected error for non-object document, got nil")
	}
}

func TestLevelInfo(t *testing.T) {
	c, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	info, ok := c.LevelInfo("algebra", 2)
	if !ok {
		t.Fatal("LevelInfo(algebra, 2) not found")
	}
	if info.Name != "Systems" {
		t.Errorf("Name = %q, want Systems", info.Name)
	}

	if _, ok := c.LevelInfo("algebra", 4); ok {
		t.Error("LevelInfo(algebra, 4) should not exist")
	}
	if _, ok := c.LevelInfo("calculus", 1); ok {
		t.Error("LevelInfo for unknown objective should not exist")
	}
}

func TestNextKey(t *testing.T) {
	c, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	next, ok := c.NextKey("algebra")
	if !ok || next != "geometry" {
		t.Errorf("NextKey(algebra) = %q, %v, want geometry, true", next, ok)
	}

	if _, ok := c.NextKey("geometry"); ok {
		t.Error("NextKey on the last objective should return false")
	}
	if _, ok := c.NextKey("unknown"); ok {
		t.Error("NextKey on an unknown objective should return false")
	}
}

func TestLevelCount(t *testing.T) {
	c, _ := Parse([]byte(sampleDoc))

	if n := c.LevelCount("algebra"); n != 3 {
		t.Errorf("LevelCount(algebra) = %d, want 3", n)
	}
	if n := c.LevelCount("unknown"); n != 0 {
		t.Errorf("LevelCount(unknown) = %d, want 0", n)
	}
}

func TestFirstKey_Empty(t *testing.T) {
	if _, ok := Empty().FirstKey(); ok {
		t.Error("FirstKey on empty catalog should return false")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objectives.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestDefault_Valid(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, key := range c.Keys() {
		for n := 1; n <= c.LevelCount(key); n++ {
			info, ok := c.LevelInfo(key, n)
			if !ok {
				t.Fatalf("%s level %d missing", key, n)
			}
			if len(info.ExampleFunctions) == 0 || len(info.Objectives) == 0 {
				t.Errorf("%s level %d needs at least one objective and example (fallback exercises depend on them)", key, n)
			}
		}
	}
}
