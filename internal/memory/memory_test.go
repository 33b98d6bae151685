package memory

import (
	"testing"

	"github.com/weaviate/weaviate/entities/models"
)

func TestNilStoreIsNoop(t *testing.T) {
	var s *Store

	if err := s.Add(t.Context(), Namespace("abc"), "attempt", "solved 3x + 5 = 17"); err != nil {
		t.Fatalf("nil store Add: %v", err)
	}

	items, err := s.Search(t.Context(), Namespace("abc"), "equations", 3)
	if err != nil {
		t.Fatalf("nil store Search: %v", err)
	}
	if items != nil {
		t.Errorf("nil store returned items: %v", items)
	}
}

func TestNamespace(t *testing.T) {
	if got := Namespace("20250101120000"); got != "student_20250101120000" {
		t.Errorf("namespace = %q", got)
	}
}

func TestParseItems(t *testing.T) {
	data := map[string]models.JSONObject{
		"Get": map[string]any{
			ClassName: []any{
				map[string]any{
					"content":   "struggled with discriminants",
					"namespace": "student_1",
					"kind":      "attempt",
					"createdAt": "2026-01-15T10:00:00Z",
				},
				map[string]any{
					"content":   "mastered linear equations",
					"namespace": "student_1",
					"kind":      "session",
				},
			},
		},
	}

	items, err := parseItems(data)
	if err != nil {
		t.Fatalf("parse items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Content != "struggled with discriminants" || items[0].Kind != "attempt" {
		t.Errorf("item 0 = %+v", items[0])
	}
	if items[0].CreatedAt.IsZero() {
		t.Error("expected parsed timestamp on item 0")
	}
	if !items[1].CreatedAt.IsZero() {
		t.Error("expected zero timestamp on item 1")
	}
}

func TestParseItems_EmptyResult(t *testing.T) {
	items, err := parseItems(map[string]models.JSONObject{})
	if err != nil {
		t.Fatalf("parse items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %v", items)
	}
}
