package ui

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"skycast/internal/debounce"
	"skycast/internal/domain"
	"skycast/internal/ui/state"
	"skycast/internal/ui/views"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultStatusTimeout  = 5 * time.Second
)

// LocationSearcher resolves a free-text query to candidate locations
type LocationSearcher interface {
	SearchLocations(ctx context.Context, query string) ([]domain.LocationCandidate, error)
}

// ForecastFetcher fetches the current conditions and daily forecast for a location
type ForecastFetcher interface {
	FetchForecast(ctx context.Context, location string, days int) (*domain.WeatherSnapshot, error)
}

// Options tune the screen's timing and startup behavior
type Options struct {
	DefaultLocation string
	Debounce        time.Duration
	RequestTimeout  time.Duration
	StatusTimeout   time.Duration
	ShowHelp        bool
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.DefaultLocation) == "" {
		o.DefaultLocation = domain.DefaultLocation
	}
	if o.Debounce <= 0 {
		o.Debounce = debounce.DefaultWindow
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = defaultRequestTimeout
	}
	if o.StatusTimeout <= 0 {
		o.StatusTimeout = defaultStatusTimeout
	}
	return o
}

// Model is the weather screen
type Model struct {
	searcher LocationSearcher
	fetcher  ForecastFetcher
	logger   *zap.SugaredLogger
	opts     Options

	state     *state.ScreenState
	debouncer *debounce.Debouncer
	input     textinput.Model
	spinner   spinner.Model
	help      help.Model
	keys      KeyMap
	renderer  *views.Renderer

	statusSeq int
	spinning  bool // a spinner tick chain is running
	width     int
	height    int
}

// NewModel creates the weather screen
func NewModel(searcher LocationSearcher, fetcher ForecastFetcher, opts Options, logger *zap.SugaredLogger) *Model {
	opts = opts.withDefaults()
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	ti := textinput.New()
	ti.Placeholder = "Search for a city..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 64
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return &Model{
		searcher:  searcher,
		fetcher:   fetcher,
		logger:    logger,
		opts:      opts,
		state:     state.NewScreenState(),
		debouncer: debounce.New(opts.Debounce),
		input:     ti,
		spinner:   sp,
		help:      help.New(),
		keys:      DefaultKeyMap(),
		renderer:  views.NewRenderer(),
	}
}

// State exposes the screen state for inspection
func (m *Model) State() *state.ScreenState {
	return m.state
}

// Init fetches the default location's forecast
func (m *Model) Init() tea.Cmd {
	m.logger.Infow("starting weather screen",
		"location", m.opts.DefaultLocation,
		"debounce", m.debouncer.Window())
	return tea.Batch(
		textinput.Blink,
		m.fetchForecast(domain.NewForecastRequest(m.opts.DefaultLocation)),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case debounce.FiredMsg:
		query, ok := m.debouncer.Accept(msg)
		if !ok {
			return m, nil
		}
		return m, m.search(query)

	case searchResultMsg:
		return m, m.handleSearchResult(msg)

	case forecastResultMsg:
		return m, m.handleForecastResult(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.ClearStatus()
		}
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.logger.Warnw("pager failed", "error", msg.err)
			return m, m.setStatus("Pager failed: "+msg.err.Error(), true)
		}
		return m, nil

	case spinner.TickMsg:
		// Let the spinner stop once nothing is loading
		if !m.state.Loading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.syncKeys()
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}

	if m.state.PanelVisible() {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.state.MoveSelection(-1)
			return nil
		case key.Matches(msg, m.keys.Down):
			m.state.MoveSelection(1)
			return nil
		case key.Matches(msg, m.keys.Select):
			return m.selectCandidate()
		case key.Matches(msg, m.keys.Dismiss):
			m.dismiss()
			return nil
		}
	}

	if key.Matches(msg, m.keys.Focus) {
		return m.toggleFocus()
	}

	if !m.input.Focused() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return nil
		case key.Matches(msg, m.keys.Details):
			if m.state.Snapshot == nil {
				return nil
			}
			return showInPager(views.RenderForecastDetail(m.state.Snapshot))
		case msg.String() == "/":
			return m.input.Focus()
		}
		return nil
	}

	if msg.Type == tea.KeyEsc {
		return m.toggleFocus()
	}

	return m.updateInput(msg)
}

// updateInput forwards a key to the text field and restarts the
// debounce window whenever the text changes
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, m.debouncer.Schedule(m.input.Value()))
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.input.Focused() {
		m.input.Blur()
		m.dismiss()
		return nil
	}
	return m.input.Focus()
}

// dismiss hides the candidate panel and drops any pending search
func (m *Model) dismiss() {
	if m.debouncer.Pending() {
		m.logger.Debugw("dropping pending search")
	}
	m.debouncer.Cancel()
	m.state.Dismiss()
}

// search issues a location search for a settled query. Queries of two
// characters or fewer never reach the network.
func (m *Model) search(raw string) tea.Cmd {
	query := strings.TrimSpace(raw)
	if utf8.RuneCountInString(query) < domain.MinQueryLength {
		m.logger.Debugw("query too short, skipping search", "query", query)
		return nil
	}

	m.state.SearchStarted(query)
	m.logger.Debugw("searching locations", "query", query)

	searcher := m.searcher
	timeout := m.opts.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		candidates, err := searcher.SearchLocations(ctx, query)
		return searchResultMsg{query: query, candidates: candidates, err: err}
	}
}

func (m *Model) handleSearchResult(msg searchResultMsg) tea.Cmd {
	if msg.err != nil {
		m.state.SearchFailed(msg.err)
		m.logger.Warnw("location search failed",
			"query", msg.query,
			"failures", m.state.SearchesFailed,
			"error", msg.err)
		return m.scheduleStatusClear()
	}

	m.logger.Debugw("location search finished", "query", msg.query, "count", len(msg.candidates))
	m.state.ApplySearchResults(msg.query, msg.candidates)
	return nil
}

func (m *Model) selectCandidate() tea.Cmd {
	req, ok := m.state.SelectCurrent()
	if !ok {
		return nil
	}
	m.debouncer.Cancel()
	m.logger.Infow("location selected", "location", req.LocationName)
	return m.fetchForecast(req)
}

// fetchForecast starts a forecast fetch. Fetches are never cancelled or
// sequenced: whichever response is handled last is what the screen shows.
func (m *Model) fetchForecast(req domain.ForecastRequest) tea.Cmd {
	if err := req.Validate(); err != nil {
		m.logger.Warnw("invalid forecast request", "error", err)
		return m.setStatus(err.Error(), true)
	}

	m.state.FetchStarted(req)
	m.logger.Debugw("fetching forecast", "location", req.LocationName, "days", req.Days)

	fetcher := m.fetcher
	timeout := m.opts.RequestTimeout
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		snap, err := fetcher.FetchForecast(ctx, req.LocationName, req.Days)
		return forecastResultMsg{request: req, snapshot: snap, err: err}
	}

	if m.spinning {
		return fetch
	}
	m.spinning = true
	return tea.Batch(fetch, m.spinner.Tick)
}

func (m *Model) handleForecastResult(msg forecastResultMsg) tea.Cmd {
	if msg.err != nil {
		m.state.FetchFailed(msg.request.LocationName, msg.err)
		m.logger.Warnw("forecast fetch failed",
			"location", msg.request.LocationName,
			"failures", m.state.FetchesFailed,
			"error", msg.err)
		return m.scheduleStatusClear()
	}

	if msg.request.LocationName != m.state.LastRequested {
		m.logger.Debugw("response for an earlier request arrived last",
			"location", msg.request.LocationName,
			"latest", m.state.LastRequested)
	}
	m.logger.Infow("forecast loaded", "location", msg.request.LocationName)
	m.state.ApplySnapshot(msg.snapshot)
	return nil
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.state.SetStatus(text, isError)
	return m.scheduleStatusClear()
}

func (m *Model) scheduleStatusClear() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(m.opts.StatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) syncKeys() {
	m.keys.updateEnabled(m.state.PanelVisible(), m.input.Focused(), m.state.Snapshot != nil)
}

// View renders the screen
func (m *Model) View() string {
	m.syncKeys()

	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		SearchInput:   m.input.View(),
		InputFocused:  m.input.Focused(),
		Candidates:    m.state.Candidates,
		PanelVisible:  m.state.PanelVisible(),
		SelectedIndex: m.state.SelectedIndex,
		Snapshot:      m.state.Snapshot,
		Loading:       m.state.Loading(),
		Spinner:       m.spinner.View(),
		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
	}
	if m.opts.ShowHelp {
		vs.HelpView = m.help.View(m.keys)
	}
	return m.renderer.Render(vs)
}
