// Package search converts a free-text query stream into a list of candidate
// members for project assignment, without flooding the search endpoint on
// every keystroke.
//
// Keystrokes are debounced: a lookup fires only after the query has been
// quiet for the configured window, and only for the value present at that
// moment. Every fired lookup is tagged with a monotonically increasing
// sequence number; a response is applied only if it belongs to the latest
// issued lookup, so a slow response for an old query can never overwrite the
// results of a newer one.
package search

import (
	"context"
	"sync"
	"time"

	"github.com/taskflowhq/taskflow-cli/internal/client/models"
	"github.com/taskflowhq/taskflow-cli/internal/logging"
)

const (
	DefaultWindow      = 500 * time.Millisecond
	DefaultMinQueryLen = 2
)

// LookupFunc queries the backend for members matching query, scoped to a
// project. UserClient.SearchAvailableMembers satisfies it.
type LookupFunc func(ctx context.Context, projectID int64, query string) ([]models.Member, error)

// Snapshot is the externally visible search state at one point in time.
type Snapshot struct {
	Query   string
	Results []models.Member
	Loading bool
}

// Config tunes a Searcher. Zero values fall back to the defaults.
type Config struct {
	Window      time.Duration
	MinQueryLen int

	// OnChange, when set, runs after every state transition with a
	// snapshot of the new state. It is called outside the internal lock.
	OnChange func(Snapshot)
}

// Searcher owns the debounce timer and the result list for one project's
// member search. Safe for use from interleaved callbacks; Close cancels a
// pending (not yet fired) lookup.
type Searcher struct {
	lookup    LookupFunc
	projectID int64
	window    time.Duration
	minLen    int
	onChange  func(Snapshot)
	log       logging.Logger

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	query   string
	results []models.Member
	loading bool
	closed  bool
}

func New(lookup LookupFunc, projectID int64, cfg Config, log logging.Logger) *Searcher {
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.MinQueryLen <= 0 {
		cfg.MinQueryLen = DefaultMinQueryLen
	}
	return &Searcher{
		lookup:    lookup,
		projectID: projectID,
		window:    cfg.Window,
		minLen:    cfg.MinQueryLen,
		onChange:  cfg.OnChange,
		log:       log.With("component", "search", "project_id", projectID),
	}
}

// SetQuery records a new query value. A value below the minimum length
// cancels any pending lookup and clears the visible results immediately,
// without a request. Otherwise the debounce timer restarts; when it elapses
// the value present at that moment is looked up.
func (s *Searcher) SetQuery(ctx context.Context, query string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.query = query
	s.stopTimerLocked()

	if len(query) < s.minLen {
		// supersede any in-flight lookup and show nothing
		s.seq++
		s.results = nil
		s.loading = false
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.emit(snap)
		return
	}

	s.timer = time.AfterFunc(s.window, func() {
		s.fire(ctx, query)
	})
	s.mu.Unlock()
}

// fire runs when the debounce window elapses. It issues the lookup for the
// query value the timer was armed with, unless a newer query replaced it.
func (s *Searcher) fire(ctx context.Context, query string) {
	s.mu.Lock()
	if s.closed || s.query != query {
		s.mu.Unlock()
		return
	}
	s.seq++
	seq := s.seq
	s.loading = true
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.emit(snap)

	results, err := s.lookup(ctx, s.projectID, query)

	s.mu.Lock()
	if s.closed || seq != s.seq {
		// a newer query superseded this lookup; drop its result
		s.mu.Unlock()
		s.log.Debug(ctx, "discarding stale search response", "query", query)
		return
	}
	s.loading = false
	if err != nil {
		s.results = nil
		snap = s.snapshotLocked()
		s.mu.Unlock()
		s.log.Warn(ctx, "member search failed", "query", query, "error", err)
		s.emit(snap)
		return
	}
	s.results = results
	snap = s.snapshotLocked()
	s.mu.Unlock()
	s.emit(snap)
}

// Results returns a copy of the currently visible candidates.
func (s *Searcher) Results() []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Member, len(s.results))
	copy(out, s.results)
	return out
}

// Loading reports whether the latest issued lookup is still outstanding.
func (s *Searcher) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Close cancels any pending lookup and marks the searcher unusable; late
// responses from lookups already in flight are discarded.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopTimerLocked()
	s.seq++
}

func (s *Searcher) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Searcher) snapshotLocked() Snapshot {
	results := make([]models.Member, len(s.results))
	copy(results, s.results)
	return Snapshot{Query: s.query, Results: results, Loading: s.loading}
}

func (s *Searcher) emit(snap Snapshot) {
	if s.onChange != nil {
		s.onChange(snap)
	}
}
