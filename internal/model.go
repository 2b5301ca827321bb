package internal

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"quitlog/internal/dates"
	"quitlog/internal/ledger"
	"quitlog/internal/settings"
	"quitlog/internal/window"
)

type screen int

const (
	screenTracker screen = iota
	screenLogbook
	screenSettings
)

type Model struct {
	ledger   *ledger.Ledger
	settings *settings.Settings
	log      zerolog.Logger
	styles   styles

	screen     screen
	prevScreen screen
	width      int
	height     int

	// Tracker state
	todayKey string
	count    int
	loading  bool

	// Logbook state
	entries        []window.Entry
	selected       int
	logbookLoading bool

	// Settings state
	dateInput textinput.Model
	startDate time.Time
	inputErr  string
}

func NewModel(led *ledger.Ledger, set *settings.Settings, theme Theme, log zerolog.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "2006-01-02"
	ti.CharLimit = 10
	ti.Width = 14

	return &Model{
		ledger:    led,
		settings:  set,
		log:       log,
		styles:    newStyles(theme),
		loading:   true,
		dateInput: ti,
	}
}

func (m *Model) Init() tea.Cmd {
	return loadTodayCmd(m.ledger)
}

// Messages carrying results back from async store work.

type msgTodayLoaded struct {
	key   string
	count int
}

type msgCountSaved struct {
	key   string
	count int
	err   error
}

type msgLogbookLoaded struct {
	entries []window.Entry
}

type msgEntrySaved struct {
	index int
	key   string
	count int
	err   error
}

type msgStartDateLoaded struct {
	date time.Time
}

type msgStartDateSaved struct {
	date time.Time
	err  error
}

// Commands. Persistence runs off the update loop; the ledger serializes
// mutations internally, so two quick taps both land.

func loadTodayCmd(led *ledger.Ledger) tea.Cmd {
	return func() tea.Msg {
		key := dates.DayKey(time.Now())
		return msgTodayLoaded{key: key, count: led.ReadDay(key)}
	}
}

func addUsageCmd(led *ledger.Ledger, key string) tea.Cmd {
	return func() tea.Msg {
		count, err := led.Increment(key)
		return msgCountSaved{key: key, count: count, err: err}
	}
}

func removeUsageCmd(led *ledger.Ledger, key string) tea.Cmd {
	return func() tea.Msg {
		count, err := led.Decrement(key)
		return msgCountSaved{key: key, count: count, err: err}
	}
}

func loadLogbookCmd(led *ledger.Ledger, set *settings.Settings) tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		start := set.StartDate(now)
		return msgLogbookLoaded{entries: window.Days(start, now, led.ReadAll())}
	}
}

func addEntryCmd(led *ledger.Ledger, index int, key string) tea.Cmd {
	return func() tea.Msg {
		count, err := led.Increment(key)
		return msgEntrySaved{index: index, key: key, count: count, err: err}
	}
}

func removeEntryCmd(led *ledger.Ledger, index int, key string) tea.Cmd {
	return func() tea.Msg {
		count, err := led.Decrement(key)
		return msgEntrySaved{index: index, key: key, count: count, err: err}
	}
}

func loadStartDateCmd(set *settings.Settings) tea.Cmd {
	return func() tea.Msg {
		return msgStartDateLoaded{date: set.StartDate(time.Now())}
	}
}

func saveStartDateCmd(set *settings.Settings, date time.Time) tea.Cmd {
	return func() tea.Msg {
		return msgStartDateSaved{date: date, err: set.SetStartDate(date)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case msgTodayLoaded:
		m.todayKey = msg.key
		m.count = msg.count
		m.loading = false
		return m, nil

	case msgCountSaved:
		// Storage failures stay silent here; the ledger already logged them
		// and the optimistic count stands until the next successful write.
		if msg.key == m.todayKey {
			m.count = msg.count
		}
		return m, nil

	case msgLogbookLoaded:
		m.entries = msg.entries
		m.logbookLoading = false
		if m.selected >= len(m.entries) {
			m.selected = len(m.entries) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil

	case msgEntrySaved:
		if msg.index >= 0 && msg.index < len(m.entries) && m.entries[msg.index].Key == msg.key {
			m.entries[msg.index].Count = msg.count
		}
		return m, nil

	case msgStartDateLoaded:
		m.startDate = msg.date
		m.dateInput.SetValue(dates.DayKey(msg.date))
		return m, nil

	case msgStartDateSaved:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("failed to save start date")
		}
		m.startDate = msg.date
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.screen {
	case screenLogbook:
		return m.logbookView()
	case screenSettings:
		return m.settingsView()
	default:
		return m.trackerView()
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenLogbook:
		return m.handleLogbookKey(msg)
	case screenSettings:
		return m.handleSettingsKey(msg)
	default:
		return m.handleTrackerKey(msg)
	}
}

func (m *Model) handleTrackerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "+", "=":
		if m.loading {
			return m, nil
		}
		m.count++
		return m, addUsageCmd(m.ledger, m.todayKey)
	case "-", "_":
		if m.loading || m.count == 0 {
			return m, nil
		}
		m.count--
		return m, removeUsageCmd(m.ledger, m.todayKey)
	case "l":
		m.screen = screenLogbook
		m.logbookLoading = true
		m.selected = 0
		return m, loadLogbookCmd(m.ledger, m.settings)
	case "s":
		return m.openSettings(screenTracker)
	}
	return m, nil
}

func (m *Model) handleLogbookKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "b":
		m.screen = screenTracker
		m.loading = true
		return m, loadTodayCmd(m.ledger)
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
	case "+", "=":
		if m.logbookLoading || m.selected >= len(m.entries) {
			return m, nil
		}
		m.entries[m.selected].Count++
		return m, addEntryCmd(m.ledger, m.selected, m.entries[m.selected].Key)
	case "-", "_":
		if m.logbookLoading || m.selected >= len(m.entries) || m.entries[m.selected].Count == 0 {
			return m, nil
		}
		m.entries[m.selected].Count--
		return m, removeEntryCmd(m.ledger, m.selected, m.entries[m.selected].Key)
	case "s":
		return m.openSettings(screenLogbook)
	}
	return m, nil
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m.closeSettings()
	case "enter":
		date, err := dates.ParseDayKey(m.dateInput.Value())
		if err != nil {
			m.inputErr = "Enter a date like 2006-01-02"
			return m, nil
		}
		if date.After(time.Now()) {
			m.inputErr = "Start date can't be in the future"
			return m, nil
		}
		m.inputErr = ""
		return m, saveStartDateCmd(m.settings, date)
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

func (m *Model) openSettings(from screen) (tea.Model, tea.Cmd) {
	m.prevScreen = from
	m.screen = screenSettings
	m.inputErr = ""
	return m, tea.Batch(loadStartDateCmd(m.settings), m.dateInput.Focus())
}

func (m *Model) closeSettings() (tea.Model, tea.Cmd) {
	m.dateInput.Blur()
	m.screen = m.prevScreen
	if m.screen == screenLogbook {
		m.logbookLoading = true
		return m, loadLogbookCmd(m.ledger, m.settings)
	}
	m.loading = true
	return m, loadTodayCmd(m.ledger)
}
