package tui

import (
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/decker502/movieque/pkg/config"
	"github.com/decker502/movieque/pkg/game"
	"github.com/decker502/movieque/pkg/surface"
)

var _ tea.Model = (*Model)(nil)

// Layout: two header lines (title, subtitle), the braille field, then the
// progress bar and the hint line.
const (
	headerLines = 2
	footerLines = 2
)

// DefaultScale is how many field pixels one braille dot covers.
const DefaultScale = 4.0

type page uint

const (
	loadingPage page = iota
	servicesPage
)

// Options configures the terminal preview.
type Options struct {
	Field    *config.FieldConfig
	Currency config.Currency
	// Settings persists currency changes; when set its currency wins over
	// Currency. nil keeps the choice in memory.
	Settings *game.SettingsManager
	// Scale is field pixels per braille dot; <= 0 means DefaultScale.
	Scale float64
	// Rand seeds the reel layout; nil means random.
	Rand *rand.Rand
}

// Model is the bubbletea model of the terminal preview: a loading session
// rendered in braille, followed by the plan summary.
type Model struct {
	opts     Options
	theme    theme
	page     page
	currency config.Currency

	viewportWidth  int
	viewportHeight int

	session *game.LoadingSession
	canvas  *surface.BrailleCanvas
	done    bool
}

// New creates the model. The session starts on the first window size message.
func New(opts Options) *Model {
	if opts.Field == nil {
		opts.Field = config.DefaultFieldConfig()
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}
	currency := opts.Currency
	if opts.Settings != nil {
		currency = opts.Settings.GetSettings().Currency
	}
	if !currency.IsValid() {
		currency = config.CurrencyUSD
	}

	return &Model{
		opts:     opts,
		theme:    newTheme(opts.Field.Style.Color),
		currency: currency,
	}
}

func (m *Model) cycleCurrency() {
	if m.opts.Settings != nil {
		m.currency = m.opts.Settings.CycleCurrency()
		return
	}
	m.currency = m.currency.Next()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		if m.session == nil && m.page == loadingPage {
			return m, m.start()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Close()
			return m, tea.Quit
		case "y":
			m.cycleCurrency()
		}

	case tea.MouseMsg:
		if m.active() && msg.Action == tea.MouseActionMotion {
			x, y := m.canvas.CellToPixel(msg.X, msg.Y-headerLines)
			m.session.MovePointer(x, y)
		}

	case frameMsg:
		if !m.current(msg.session) {
			return m, nil
		}
		m.session.StepFrame()
		m.session.Draw(m.canvas)
		return m, frameCmd(msg.session)

	case progressTickMsg:
		if !m.current(msg.session) {
			return m, nil
		}
		if m.session.TickProgress() {
			return m, completeCmd(msg.session, m.session.CompletionDelay())
		}
		return m, progressCmd(msg.session, m.session.TickInterval())

	case completeMsg:
		if !m.current(msg.session) {
			return m, nil
		}
		m.session.FireCompletion()
	}

	return m, nil
}

// start creates the session sized to the terminal and acquires its timers.
func (m *Model) start() tea.Cmd {
	rows := max(m.viewportHeight-headerLines-footerLines, 0)
	m.canvas = surface.NewBrailleCanvas(m.viewportWidth, rows, m.opts.Scale)
	width, height := m.canvas.PixelSize()

	m.session = game.NewLoadingSession(game.SessionOptions{
		Config:     m.opts.Field,
		Width:      width,
		Height:     height,
		Rand:       m.opts.Rand,
		OnComplete: m.onComplete,
	})
	zap.S().Debugf("[TUI] session %s on %dx%d cells", m.session.ID(), m.viewportWidth, rows)

	id := m.session.ID()
	return tea.Batch(frameCmd(id), progressCmd(id, m.session.TickInterval()))
}

func (m *Model) onComplete() {
	m.done = true
	m.page = servicesPage
	m.session.Close()
}

func (m *Model) active() bool {
	return m.session != nil && !m.session.Closed()
}

func (m *Model) current(id string) bool {
	return m.active() && m.session.ID() == id
}

// Close releases the session; safe to call any number of times.
func (m *Model) Close() {
	if m.session != nil {
		m.session.Close()
	}
}

// Session returns the current session, nil before the first window size.
func (m *Model) Session() *game.LoadingSession {
	return m.session
}

// Done reports whether the loading completed.
func (m *Model) Done() bool {
	return m.done
}
