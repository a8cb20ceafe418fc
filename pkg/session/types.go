package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ufal/maskit-web/pkg/render"
)

var (
	// ErrSessionNotFound is returned for unknown session IDs.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoResult is returned when output is requested before any result arrived.
	ErrNoResult = errors.New("no processed result")

	// ErrSuperseded is returned when a response arrives for a submission that
	// has since been replaced by a newer one.
	ErrSuperseded = errors.New("submission superseded by a newer one")
)

// Status represents the current state of a session.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

const (
	citationsBaseName = "citations"
	statisticsFile    = "statistics.html"
)

// Session holds the last processed result of one user together with the
// display toggles applied to it.
type Session struct {
	ID        string                  `json:"id"`
	Result    *render.ProcessedResult `json:"result,omitempty"`
	Stats     string                  `json:"stats,omitempty"`
	Options   render.DisplayOptions   `json:"options"`
	Status    Status                  `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
	Error     string                  `json:"error,omitempty"`

	mu         sync.RWMutex
	generation uint64
	cancelFunc context.CancelFunc
}

// BeginSubmission starts a new submission. Any submission still in flight is
// cancelled and the previous result is cleared. The returned generation must
// be passed to CompleteSubmission or FailSubmission.
func (s *Session) BeginSubmission(cancel context.CancelFunc) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.generation++
	s.cancelFunc = cancel
	s.Result = nil
	s.Stats = ""
	s.Error = ""
	s.Status = StatusProcessing
	s.UpdatedAt = time.Now()
	return s.generation
}

// CompleteSubmission stores the result of submission gen. A stale generation
// leaves the session untouched and returns ErrSuperseded.
func (s *Session) CompleteSubmission(gen uint64, result render.ProcessedResult, stats string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrSuperseded
	}
	s.cancelFunc = nil
	s.Result = &result
	s.Stats = stats
	s.Status = StatusCompleted
	s.UpdatedAt = time.Now()
	return nil
}

// FailSubmission records the failure of submission gen. A stale generation
// leaves the session untouched and returns ErrSuperseded.
func (s *Session) FailSubmission(gen uint64, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrSuperseded
	}
	s.cancelFunc = nil
	s.Error = err.Error()
	if errors.Is(err, context.Canceled) {
		s.Status = StatusCancelled
	} else {
		s.Status = StatusFailed
	}
	s.UpdatedAt = time.Now()
	return nil
}

// Cancel cancels the submission in flight, if any.
func (s *Session) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelFunc == nil {
		return false
	}
	s.cancelFunc()
	s.cancelFunc = nil
	s.generation++
	s.Status = StatusCancelled
	s.UpdatedAt = time.Now()
	return true
}

// SetOptions replaces both display toggles.
func (s *Session) SetOptions(opts render.DisplayOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Options = opts
	s.UpdatedAt = time.Now()
}

// ToggleOriginals flips the originals toggle and returns the new options.
func (s *Session) ToggleOriginals() render.DisplayOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Options.ShowOriginals = !s.Options.ShowOriginals
	s.UpdatedAt = time.Now()
	return s.Options
}

// ToggleHighlighting flips the highlighting toggle and returns the new options.
func (s *Session) ToggleHighlighting() render.DisplayOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Options.ShowHighlighting = !s.Options.ShowHighlighting
	s.UpdatedAt = time.Now()
	return s.Options
}

// Output renders the stored result with the current toggles. With display
// set, text output gets its on-screen line breaks.
func (s *Session) Output(display bool) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Result == nil {
		return "", ErrNoResult
	}
	if display {
		return render.RenderForDisplay(*s.Result, s.Options), nil
	}
	return render.Render(*s.Result, s.Options), nil
}

// Download is a file offered for saving.
type Download struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Download returns the current variant as citations.<format>.
func (s *Session) Download() (*Download, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Result == nil {
		return nil, ErrNoResult
	}
	return &Download{
		FileName:    s.Result.Format.FileName(citationsBaseName),
		ContentType: s.Result.Format.ContentType(),
		Data:        []byte(render.Render(*s.Result, s.Options)),
	}, nil
}

// StatsDownload returns the statistics table as statistics.html.
func (s *Session) StatsDownload() (*Download, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Result == nil {
		return nil, ErrNoResult
	}
	return &Download{
		FileName:    statisticsFile,
		ContentType: "text/html; charset=utf-8",
		Data:        []byte(s.Stats),
	}, nil
}

// Clone creates a safe copy of the session for reading.
func (s *Session) Clone() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result *render.ProcessedResult
	if s.Result != nil {
		r := *s.Result
		result = &r
	}
	return Session{
		ID:        s.ID,
		Result:    result,
		Stats:     s.Stats,
		Options:   s.Options,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Error:     s.Error,
	}
}

func (s *Session) lastActivity() (time.Time, Status) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.UpdatedAt, s.Status
}
