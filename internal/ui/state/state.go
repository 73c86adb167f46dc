package state

import (
	"skycast/internal/domain"
)

// Phase is the search panel state
type Phase int

const (
	// PhaseIdle means no candidates are shown
	PhaseIdle Phase = iota
	// PhaseSearching means candidates are displayed and awaiting a selection
	PhaseSearching
)

func (p Phase) String() string {
	switch p {
	case PhaseSearching:
		return "searching"
	default:
		return "idle"
	}
}

// ScreenState contains all the long-lived view state of the weather screen.
// It is only mutated from the bubbletea event loop, through the methods below.
type ScreenState struct {
	// Search panel
	Candidates     []domain.LocationCandidate // latest search result
	SearchVisible  bool                       // visibility flag, ANDed with a non-empty list
	SelectedIndex  int                        // highlighted candidate
	LastQuery      string                     // query that produced Candidates
	SearchesFailed int

	// Forecast
	Snapshot       *domain.WeatherSnapshot // current snapshot, nil until the first success
	PendingFetches int                     // forecast fetches in flight
	LastRequested  string                  // location of the most recent fetch started
	FetchesFailed  int

	// UI state
	StatusMessage string // transient status bar message
	StatusIsError bool
}

// NewScreenState creates an empty state
func NewScreenState() *ScreenState {
	return &ScreenState{
		Candidates: make([]domain.LocationCandidate, 0),
	}
}

// Phase derives the panel state from the candidate list and visibility flag
func (s *ScreenState) Phase() Phase {
	if s.PanelVisible() {
		return PhaseSearching
	}
	return PhaseIdle
}

// PanelVisible reports whether the candidate panel should be rendered
func (s *ScreenState) PanelVisible() bool {
	return len(s.Candidates) > 0 && s.SearchVisible
}

// Search transitions

// SearchStarted records that a remote search was issued
func (s *ScreenState) SearchStarted(query string) {
	s.LastQuery = query
}

// ApplySearchResults replaces the candidate list wholesale and shows the panel
func (s *ScreenState) ApplySearchResults(query string, candidates []domain.LocationCandidate) {
	s.Candidates = append(make([]domain.LocationCandidate, 0, len(candidates)), candidates...)
	s.SearchVisible = true
	s.SelectedIndex = 0
	s.LastQuery = query
}

// SearchFailed leaves the candidate list untouched
func (s *ScreenState) SearchFailed(err error) {
	s.SearchesFailed++
	s.SetStatus("Search failed: "+err.Error(), true)
}

// SelectCandidate clears the panel and returns the forecast request for the
// chosen candidate. Candidates are identified by name only.
func (s *ScreenState) SelectCandidate(index int) (domain.ForecastRequest, bool) {
	if index < 0 || index >= len(s.Candidates) {
		return domain.ForecastRequest{}, false
	}
	chosen := s.Candidates[index]
	s.clearCandidates()
	return domain.NewForecastRequest(chosen.Name), true
}

// SelectCurrent selects the highlighted candidate
func (s *ScreenState) SelectCurrent() (domain.ForecastRequest, bool) {
	if !s.PanelVisible() {
		return domain.ForecastRequest{}, false
	}
	return s.SelectCandidate(s.SelectedIndex)
}

// Dismiss hides the panel. The list is cleared as well, so a later
// re-focus never shows stale candidates.
func (s *ScreenState) Dismiss() {
	s.clearCandidates()
}

// MoveSelection moves the highlighted candidate by delta, clamped to the list
func (s *ScreenState) MoveSelection(delta int) {
	if len(s.Candidates) == 0 {
		s.SelectedIndex = 0
		return
	}
	s.SelectedIndex += delta
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex >= len(s.Candidates) {
		s.SelectedIndex = len(s.Candidates) - 1
	}
}

func (s *ScreenState) clearCandidates() {
	s.Candidates = make([]domain.LocationCandidate, 0)
	s.SearchVisible = false
	s.SelectedIndex = 0
}

// Forecast transitions

// FetchStarted records a forecast fetch and clears the candidate list
func (s *ScreenState) FetchStarted(req domain.ForecastRequest) {
	s.clearCandidates()
	s.PendingFetches++
	s.LastRequested = req.LocationName
}

// ApplySnapshot replaces the current snapshot. The last response to arrive wins.
func (s *ScreenState) ApplySnapshot(snap *domain.WeatherSnapshot) {
	s.fetchFinished()
	if snap == nil {
		return
	}
	s.Snapshot = snap
}

// FetchFailed keeps the previous snapshot
func (s *ScreenState) FetchFailed(location string, err error) {
	s.fetchFinished()
	s.FetchesFailed++
	s.SetStatus("Forecast for "+location+" failed: "+err.Error(), true)
}

// Loading reports whether any forecast fetch is in flight
func (s *ScreenState) Loading() bool {
	return s.PendingFetches > 0
}

func (s *ScreenState) fetchFinished() {
	if s.PendingFetches > 0 {
		s.PendingFetches--
	}
}

// Status

// SetStatus sets the status bar message
func (s *ScreenState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus clears the status bar message
func (s *ScreenState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
