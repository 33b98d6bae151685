package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// LevelInfo describes one difficulty tier within an objective.
type LevelInfo struct {
	Name             string   `json:"name"`
	Objectives       []string `json:"objectives"`
	ExampleFunctions []string `json:"example_functions"`
}

// Objective is a named mathematical topic with ordered difficulty levels.
type Objective struct {
	Description string `json:"description"`
	// Levels maps level number ("1", "2", ...) to its info. The JSON key is
	// "niveaux" for compatibility with existing objective files.
	Levels map[string]LevelInfo `json:"niveaux"`
}

// Catalog is the static, ordered set of learning objectives. The order of
// keys in the source document is the progression order.
type Catalog struct {
	objectives map[string]Objective
	order      []string
}

// Empty returns a catalog with no objectives. Used as the fallback when
// loading fails; exercise generation reports the empty state downstream.
func Empty() *Catalog {
	return &Catalog{objectives: map[string]Objective{}}
}

// Load reads and parses a catalog document from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog document, preserving key declaration order.
// encoding/json maps lose ordering, so the top level is walked token by
// token.
func Parse(data []byte) (*Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("catalog document must be a JSON object")
	}

	c := &Catalog{objectives: make(map[string]Objective)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode key: %w", err)
		}
		key := keyTok.(string)

		var obj Objective
		if err := dec.Decode(&obj); err != nil {
			return nil, fmt.Errorf("decode objective %q: %w", key, err)
		}
		if err := validateObjective(key, obj); err != nil {
			return nil, err
		}
		// A repeated key would put a second copy in the order slice and
		// let progression revisit it.
		if _, dup := c.objectives[key]; dup {
			return nil, fmt.Errorf("duplicate objective key %q", key)
		}

		c.objectives[key] = obj
		c.order = append(c.order, key)
	}

	return c, nil
}

// validateObjective checks that level numbers form a contiguous 1..N range.
func validateObjective(key string, obj Objective) error {
	if len(obj.Levels) == 0 {
		return fmt.Errorf("objective %q has no levels", key)
	}
	for n := 1; n <= len(obj.Levels); n++ {
		if _, ok := obj.Levels[strconv.Itoa(n)]; !ok {
			return fmt.Errorf("objective %q is missing level %d", key, n)
		}
	}
	return nil
}

// Len returns the number of objectives.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Keys returns the objective keys in progression order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Objective returns the objective for key.
func (c *Catalog) Objective(key string) (Objective, bool) {
	obj, ok := c.objectives[key]
	return obj, ok
}

// LevelInfo returns the info for the given level of an objective.
func (c *Catalog) LevelInfo(key string, level int) (LevelInfo, bool) {
	obj, ok := c.objectives[key]
	if !ok {
		return LevelInfo{}, false
	}
	info, ok := obj.Levels[strconv.Itoa(level)]
	return info, ok
}

// LevelCount returns the number of levels for an objective, 0 if unknown.
func (c *Catalog) LevelCount(key string) int {
	obj, ok := c.objectives[key]
	if !ok {
		return 0
	}
	return len(obj.Levels)
}

// FirstKey returns the first objective key in progression order.
func (c *Catalog) FirstKey() (string, bool) {
	if len(c.order) == 0 {
		return "", false
	}
	return c.order[0], true
}

// NextKey returns the objective key immediately following current in
// progression order, or false if current is the last (or unknown).
func (c *Catalog) NextKey(current string) (string, bool) {
	for i, k := range c.order {
		if k == current {
			if i+1 < len(c.order) {
				return c.order[i+1], true
			}
			return "", false
		}
	}
	return "", false
}
