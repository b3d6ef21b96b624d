// internal/score/store.go
package score

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	scoresObject   = "scores"
	scoresProperty = "table"
)

// Record is one finished session.
type Record struct {
	Score int   `yaml:"score"`
	At    int64 `yaml:"at"` // unix seconds
}

// Store keeps the high-score table and persists it through gdata.
// A nil manager runs the store in memory only.
type Store struct {
	mu           sync.Mutex
	gdataManager *gdata.Manager
	records      []Record
	limit        int
	now          func() time.Time
}

// Open creates a gdata manager for appName. On failure the store still works,
// in memory only.
func Open(appName string, limit int) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Score] Warning: persistent storage unavailable: %v (scores kept in memory)", err)
		m = nil
	}
	return NewStore(m, limit)
}

func NewStore(gdataManager *gdata.Manager, limit int) *Store {
	if limit < 1 {
		limit = 1
	}
	s := &Store{
		gdataManager: gdataManager,
		limit:        limit,
		now:          time.Now,
	}
	if err := s.Load(); err != nil {
		log.Printf("[Score] Warning: failed to load high scores: %v (starting empty)", err)
	}
	return s
}

// Load reads the table. A missing table is not an error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	if s.gdataManager == nil || !s.gdataManager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil
	}
	data, err := s.gdataManager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to unmarshal scores: %w", err)
	}
	s.records = normalize(records, s.limit)
	return nil
}

func (s *Store) save() error {
	if s.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}
	return nil
}

// ReportFinalScore records a finished session and persists the table.
func (s *Store) ReportFinalScore(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = normalize(append(s.records, Record{Score: score, At: s.now().Unix()}), s.limit)
	if err := s.save(); err != nil {
		log.Printf("[Score] ERROR: %v", err)
		return
	}
	log.Printf("[Score] final score %d recorded", score)
}

// HighScores returns the table, best first.
func (s *Store) HighScores() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Best returns the top score, or 0 for an empty table.
func (s *Store) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return 0
	}
	return s.records[0].Score
}

// normalize sorts best first (earlier wins ties) and trims to limit.
func normalize(records []Record, limit int) []Record {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].At < records[j].At
	})
	if len(records) > limit {
		records = records[:limit]
	}
	return records
}
