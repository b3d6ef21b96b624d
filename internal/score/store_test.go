package score

import (
	"os"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

func openTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: "go_tactical_defense_test"})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return m
}

func fixedClock(start int64) func() time.Time {
	n := start
	return func() time.Time {
		n++
		return time.Unix(n, 0)
	}
}

func TestNilManagerKeepsScoresInMemory(t *testing.T) {
	s := NewStore(nil, 3)
	s.now = fixedClock(0)
	for _, v := range []int{10, 50, 30, 20} {
		s.ReportFinalScore(v)
	}

	got := s.HighScores()
	want := []int{50, 30, 20}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Score != w {
			t.Errorf("rank %d: got %d, want %d", i, got[i].Score, w)
		}
	}
	if s.Best() != 50 {
		t.Errorf("Best = %d", s.Best())
	}
}

func TestTiesKeepTheEarlierRecordFirst(t *testing.T) {
	s := NewStore(nil, 5)
	s.now = fixedClock(100)
	s.ReportFinalScore(7)
	s.ReportFinalScore(7)

	got := s.HighScores()
	if got[0].At >= got[1].At {
		t.Fatalf("earlier record should rank first: %+v", got)
	}
}

func TestScoresPersistAcrossStores(t *testing.T) {
	m := openTestManager(t)
	s := NewStore(m, 10)
	s.now = fixedClock(0)
	s.ReportFinalScore(120)
	s.ReportFinalScore(80)

	reopened := NewStore(m, 10)
	got := reopened.HighScores()
	if len(got) != 2 || got[0].Score != 120 || got[1].Score != 80 {
		t.Fatalf("unexpected persisted table %+v", got)
	}
}

func TestEmptyStoreBest(t *testing.T) {
	if NewStore(nil, 10).Best() != 0 {
		t.Fatalf("empty table should report 0")
	}
}
