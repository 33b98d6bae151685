package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNotFound is returned by Load when no profile exists for the id.
var ErrNotFound = errors.New("student profile not found")

// Store persists student profiles, one JSON document per student,
// overwritten wholesale on every save. Concurrent writers to the same id
// are not supported; the last writer wins.
type Store struct {
	dir string

	// now is swappable for tests.
	now func() time.Time
}

// NewStore creates a Store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Summary is a lightweight listing entry for stored profiles.
type Summary struct {
	StudentID        string
	Name             string
	Level            int
	CurrentObjective string
	LastSession      time.Time
}

// Create generates a fresh profile, persists it, and returns it.
// The id is timestamp-derived: unique enough for single-process use,
// not cryptographically unique.
func (s *Store) Create(name string) (*Profile, error) {
	now := s.now()
	id := now.Format("20060102150405") + fmt.Sprintf("%02d", now.Nanosecond()/1e7)

	// Guard against same-tick creation.
	for i := 0; s.exists(id); i++ {
		id = fmt.Sprintf("%s%02d", now.Format("20060102150405"), (now.Nanosecond()/1e7+i+1)%100)
		if i > 100 {
			return nil, fmt.Errorf("could not allocate a unique student id")
		}
	}

	p := &Profile{
		StudentID:           id,
		Name:                name,
		Level:               1,
		LearningHistory:     []AttemptRecord{},
		ObjectivesCompleted: []string{},
		CreatedAt:           now,
		LastSession:         now,
	}
	if err := s.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads the profile for id and stamps LastSession.
// Returns ErrNotFound when no record exists.
func (s *Store) Load(id string) (*Profile, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read profile %s: %w", id, err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", id, err)
	}

	p.LastSession = s.now()
	return &p, nil
}

// Save overwrites the profile record wholesale. Write failures are
// returned to the caller: a lost save means lost level and history.
func (s *Store) Save(p *Profile) error {
	if p.StudentID == "" {
		return fmt.Errorf("profile has no student id")
	}

	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", p.StudentID, err)
	}

	// Write-then-rename so a crash mid-write cannot corrupt the last
	// successfully persisted record.
	tmp := s.path(p.StudentID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write profile %s: %w", p.StudentID, err)
	}
	if err := os.Rename(tmp, s.path(p.StudentID)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("persist profile %s: %w", p.StudentID, err)
	}
	return nil
}

// Delete removes the stored record for id. Missing records are not an error.
func (s *Store) Delete(id string) error {
	err := os.Remove(s.path(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete profile %s: %w", id, err)
	}
	return nil
}

// List returns summaries of all stored profiles, most recent session first.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	var out []Summary
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		id := strings.TrimSuffix(name, ".json")
		data, err := os.ReadFile(s.path(id))
		if err != nil {
			continue
		}
		var p Profile
		if err := json.Unmarshal(data, &p); err != nil {
			continue // skip unreadable records rather than failing the listing
		}
		out = append(out, Summary{
			StudentID:        p.StudentID,
			Name:             p.Name,
			Level:            p.Level,
			CurrentObjective: p.CurrentObjective,
			LastSession:      p.LastSession,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].LastSession.After(out[j].LastSession)
	})
	return out, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *Store) exists(id string) bool {
	_, err := os.Stat(s.path(id))
	return err == nil
}
