// Package memory is the optional long-term memory layer: per-student
// tutoring moments stored in Weaviate and retrieved by text similarity to
// enrich prompts. Everything here is best-effort — when Weaviate is not
// running, the rest of the application behaves as if the layer did not
// exist.
package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/filters"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"
)

// ClassName is the Weaviate class holding student memories.
const ClassName = "StudentMemory"

// Item is one stored memory.
type Item struct {
	Content   string
	Namespace string
	Kind      string // "attempt", "profile", "session"
	CreatedAt time.Time
}

// Config holds connection settings.
type Config struct {
	Host   string // e.g. "localhost:8080"
	Scheme string // "http" or "https"
}

// Store is a vector memory scoped by namespace (one per student,
// "student_<id>"). A nil *Store is valid and makes every method a no-op.
type Store struct {
	client *weaviate.Client
}

// New connects to Weaviate and ensures the memory class exists. Callers
// treat an error as "memory disabled" and continue with a nil store.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Scheme == "" {
		cfg.Scheme = "http"
	}

	client, err := weaviate.NewClient(weaviate.Config{
		Host:   cfg.Host,
		Scheme: cfg.Scheme,
	})
	if err != nil {
		return nil, fmt.Errorf("weaviate client: %w", err)
	}

	ready, err := client.Misc().ReadyChecker().Do(ctx)
	if err != nil || !ready {
		return nil, fmt.Errorf("weaviate not reachable at %s", cfg.Host)
	}

	s := &Store{client: client}
	if err := s.ensureClass(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureClass(ctx context.Context) error {
	if _, err := s.client.Schema().ClassGetter().WithClassName(ClassName).Do(ctx); err == nil {
		return nil
	}

	class := &models.Class{
		Class:      ClassName,
		Vectorizer: "text2vec-transformers",
		Properties: []*models.Property{
			{Name: "content", DataType: []string{"text"}},
			{Name: "namespace", DataType: []string{"string"}},
			{Name: "kind", DataType: []string{"string"}},
			{Name: "createdAt", DataType: []string{"date"}},
		},
	}
	if err := s.client.Schema().ClassCreator().WithClass(class).Do(ctx); err != nil {
		return fmt.Errorf("create memory class: %w", err)
	}
	return nil
}

// Add stores one memory in the namespace. No-op on a nil store.
func (s *Store) Add(ctx context.Context, namespace, kind, content string) error {
	if s == nil {
		return nil
	}

	_, err := s.client.Data().Creator().
		WithClassName(ClassName).
		WithProperties(map[string]any{
			"content":   content,
			"namespace": namespace,
			"kind":      kind,
			"createdAt": time.Now().UTC().Format(time.RFC3339),
		}).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("add memory: %w", err)
	}
	return nil
}

// Search returns up to limit memories from the namespace nearest to the
// query text. A nil store returns nothing.
func (s *Store) Search(ctx context.Context, namespace, query string, limit int) ([]Item, error) {
	if s == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 3
	}

	where := filters.Where().
		WithPath([]string{"namespace"}).
		WithOperator(filters.Equal).
		WithValueString(namespace)

	nearText := s.client.GraphQL().NearTextArgBuilder().
		WithConcepts([]string{query})

	result, err := s.client.GraphQL().Get().
		WithClassName(ClassName).
		WithFields(
			graphql.Field{Name: "content"},
			graphql.Field{Name: "namespace"},
			graphql.Field{Name: "kind"},
			graphql.Field{Name: "createdAt"},
		).
		WithWhere(where).
		WithNearText(nearText).
		WithLimit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("search memories: %w", err)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("search memories: %s", result.Errors[0].Message)
	}

	return parseItems(result.Data)
}

func parseItems(data map[string]models.JSONObject) ([]Item, error) {
	get, ok := data["Get"].(map[string]any)
	if !ok {
		return nil, nil
	}
	rows, ok := get[ClassName].([]any)
	if !ok {
		return nil, nil
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		props, ok := row.(map[string]any)
		if !ok {
			continue
		}
		item := Item{}
		if v, ok := props["content"].(string); ok {
			item.Content = v
		}
		if v, ok := props["namespace"].(string); ok {
			item.Namespace = v
		}
		if v, ok := props["kind"].(string); ok {
			item.Kind = v
		}
		if v, ok := props["createdAt"].(string); ok {
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				item.CreatedAt = t
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// Namespace returns the memory namespace for a student id.
func Namespace(studentID string) string {
	return "student_" + studentID
}
