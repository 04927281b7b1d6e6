package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	economydto "chorely/internal/modules/economy/dto"
	reportdto "chorely/internal/modules/report/dto"
	timerdto "chorely/internal/modules/timer/dto"
	apperrors "chorely/internal/platform/errors"
	"chorely/internal/ui/components"
	"chorely/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type economyPort interface {
	Status(ctx context.Context) (economydto.StatusOutput, error)
	Preview(ctx context.Context, durationSeconds int, chores []string) (economydto.RewardsOutput, error)
	Shop(ctx context.Context) ([]economydto.ShopItemOutput, error)
	Buy(ctx context.Context, itemID string) (economydto.BuyOutput, error)
	Rebirth(ctx context.Context) (economydto.StatusOutput, error)
	UseTheme(ctx context.Context, id string) (economydto.StatusOutput, error)
	UseBackground(ctx context.Context, id string) (economydto.StatusOutput, error)
	Chores(ctx context.Context) ([]string, error)
	AddChore(ctx context.Context, name string) (economydto.ChoresOutput, error)
	RemoveChore(ctx context.Context, name string) (economydto.ChoresOutput, error)
}

type timerPort interface {
	Start(ctx context.Context) (timerdto.TimerOutput, error)
	Pause(ctx context.Context) (timerdto.TimerOutput, error)
	Resume(ctx context.Context) (timerdto.TimerOutput, error)
	Status(ctx context.Context) (timerdto.TimerOutput, error)
	Stop(ctx context.Context, timerID string, chores []string) (timerdto.StopOutput, error)
	Discard(ctx context.Context) error
	LogManual(ctx context.Context, minutes float64, chores []string) (economydto.SessionOutput, error)
}

type reportPort interface {
	Weekly(ctx context.Context, weekKey string) (reportdto.WeeklyOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabShop
	tabWeek
	tabCount
)

var tabLabels = [tabCount]string{"Timer", "Shop", "Week"}

const tickInterval = 200 * time.Millisecond

// ─── async messages ──────────────────────────────────────────────────────────

type tickMsg time.Time

type statusMsg struct {
	status economydto.StatusOutput
	err    error
}

type choresMsg struct {
	chores []string
	note   string
	err    error
}

type timerMsg struct {
	timer timerdto.TimerOutput
	note  string
	err   error
}

type timerClearedMsg struct{ err error }

type savedMsg struct {
	session economydto.SessionOutput
	err     error
}

type previewMsg struct {
	key     string
	rewards economydto.RewardsOutput
	err     error
}

type shopMsg struct {
	items []economydto.ShopItemOutput
	err   error
}

type weekMsg struct {
	week reportdto.WeeklyOutput
	err  error
}

// actionMsg reports a ledger mutation. Status and shop are reloaded after it.
type actionMsg struct {
	note string
	err  error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Enter   key.Binding
	Save    key.Binding
	Discard key.Binding
	PrevWk  key.Binding
	NextWk  key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next tab")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "tick chore")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start/pause · buy")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save session")),
		Discard: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "discard timer")),
		PrevWk:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "week")),
		NextWk:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←/→", "week")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Enter},
		{k.Save, k.Discard, k.PrevWk},
		{k.Tab, k.Palette, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It keeps a display copy of the ledger
// and the running timer. Every change goes through the ports.
type Model struct {
	economy economyPort
	timers  timerPort
	report  reportPort

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	styles    theme.Styles
	level     progress.Model

	status   economydto.StatusOutput
	chores   []string
	selected map[string]bool
	cursor   int

	timer    timerdto.TimerOutput
	hasTimer bool
	syncedAt time.Time
	now      time.Time

	preview    economydto.RewardsOutput
	previewKey string

	shop       []economydto.ShopItemOutput
	shopCursor int

	week reportdto.WeeklyOutput

	flash  string
	width  int
	height int
}

func NewModel(economy economyPort, timers timerPort, report reportPort) Model {
	styles := theme.NewStyles(theme.Default)
	level := progress.New(progress.WithSolidFill(string(styles.Palette.Accent)), progress.WithoutPercentage())
	level.Width = 24
	return Model{
		economy:  economy,
		timers:   timers,
		report:   report,
		keys:     defaultKeys(),
		help:     help.New(),
		palette:  components.NewPalette(styles),
		styles:   styles,
		level:    level,
		selected: map[string]bool{},
		now:      time.Now(),
		flash:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadStatusCmd(),
		m.loadChoresCmd(""),
		m.loadTimerCmd(),
		m.loadShopCmd(),
		m.loadWeekCmd(""),
		tick(),
	)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.palette.SetWidth(min(msg.Width-4, 72))
		m.level.Width = max(10, min(32, msg.Width/3))

	case tickMsg:
		m.now = time.Time(msg)
		preview := m.refreshPreview()
		return m, tea.Batch(preview, tick())

	case statusMsg:
		if msg.err != nil {
			m.flash = "status: " + msg.err.Error()
			break
		}
		m.status = msg.status
		m.applyTheme(msg.status.ActiveTheme)

	case choresMsg:
		if msg.err != nil {
			m.flash = msg.err.Error()
			break
		}
		m.chores = msg.chores
		m.pruneSelection()
		if msg.note != "" {
			m.flash = msg.note
		}
		preview := m.refreshPreview()
		return m, preview

	case timerMsg:
		switch {
		case errors.Is(msg.err, apperrors.ErrNoActiveTimer):
			m.hasTimer = false
		case msg.err != nil:
			m.flash = "timer: " + msg.err.Error()
		default:
			m.timer = msg.timer
			m.hasTimer = true
			m.syncedAt = time.Now()
			if msg.note != "" {
				m.flash = msg.note
			}
		}
		preview := m.refreshPreview()
		return m, preview

	case timerClearedMsg:
		if msg.err != nil {
			m.flash = "discard: " + msg.err.Error()
			break
		}
		m.hasTimer = false
		m.timer = timerdto.TimerOutput{}
		m.flash = "timer discarded"
		preview := m.refreshPreview()
		return m, preview

	case savedMsg:
		if msg.err != nil {
			m.flash = "save: " + msg.err.Error()
			break
		}
		m.flash = savedNote(msg.session)
		if msg.session.Source == "stopwatch" {
			m.hasTimer = false
			m.timer = timerdto.TimerOutput{}
		}
		m.selected = map[string]bool{}
		preview := m.refreshPreview()
		return m, tea.Batch(m.loadStatusCmd(), m.loadShopCmd(), m.loadWeekCmd(m.week.WeekKey), preview)

	case previewMsg:
		if msg.key == m.previewKey && msg.err == nil {
			m.preview = msg.rewards
		}

	case shopMsg:
		if msg.err != nil {
			m.flash = "shop: " + msg.err.Error()
			break
		}
		m.shop = msg.items
		m.shopCursor = clamp(m.shopCursor, len(m.shop))

	case weekMsg:
		if msg.err != nil {
			m.flash = "week: " + msg.err.Error()
			break
		}
		m.week = msg.week

	case actionMsg:
		if msg.err != nil {
			m.flash = msg.err.Error()
			break
		}
		m.flash = msg.note
		preview := m.refreshPreview()
		return m, tea.Batch(m.loadStatusCmd(), m.loadShopCmd(), preview)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.flash = "ready"

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Palette):
		cmd := m.palette.Open("")
		return m, cmd
	case msg.String() == "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
	case msg.String() == "shift+tab":
		m.activeTab = (m.activeTab + tabCount - 1) % tabCount
	}

	switch m.activeTab {
	case tabTimer:
		return m.timerKey(msg)
	case tabShop:
		return m.shopKey(msg)
	case tabWeek:
		return m.weekKey(msg)
	}
	return m, nil
}

func (m Model) timerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = clamp(m.cursor-1, len(m.chores))
	case key.Matches(msg, m.keys.Down):
		m.cursor = clamp(m.cursor+1, len(m.chores))
	case key.Matches(msg, m.keys.Toggle):
		if len(m.chores) == 0 {
			return m, nil
		}
		name := m.chores[m.cursor]
		if m.selected[name] {
			delete(m.selected, name)
		} else {
			m.selected[name] = true
		}
		preview := m.refreshPreview()
		return m, preview
	case key.Matches(msg, m.keys.Enter):
		switch {
		case !m.hasTimer:
			return m, m.timerCmd(m.timers.Start, "timer started")
		case m.timer.Status == "running":
			return m, m.timerCmd(m.timers.Pause, "paused")
		default:
			return m, m.timerCmd(m.timers.Resume, "resumed")
		}
	case key.Matches(msg, m.keys.Save):
		if !m.hasTimer {
			m.flash = "start the timer first, or use :log <minutes>"
			return m, nil
		}
		return m, m.stopCmd(m.timer.ID, m.selectedChores())
	case key.Matches(msg, m.keys.Discard):
		if !m.hasTimer {
			return m, nil
		}
		return m, m.discardCmd()
	}
	return m, nil
}

func (m Model) shopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.shopCursor = clamp(m.shopCursor-1, len(m.shop))
	case key.Matches(msg, m.keys.Down):
		m.shopCursor = clamp(m.shopCursor+1, len(m.shop))
	case key.Matches(msg, m.keys.Enter):
		if len(m.shop) == 0 {
			return m, nil
		}
		item := m.shop[m.shopCursor]
		if item.Owned {
			switch item.Kind {
			case "theme":
				return m, m.useThemeCmd(strings.TrimPrefix(item.ID, "theme:"))
			case "background":
				return m, m.useBackgroundCmd(strings.TrimPrefix(item.ID, "bg:"))
			}
		}
		return m, m.buyCmd(item.ID)
	}
	return m, nil
}

func (m Model) weekKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	idx := -1
	for i, w := range m.week.Weeks {
		if w.WeekKey == m.week.WeekKey {
			idx = i
		}
	}
	if idx < 0 {
		return m, nil
	}
	// Weeks are listed newest first.
	switch {
	case key.Matches(msg, m.keys.PrevWk) && idx+1 < len(m.week.Weeks):
		return m, m.loadWeekCmd(m.week.Weeks[idx+1].WeekKey)
	case key.Matches(msg, m.keys.NextWk) && idx > 0:
		return m, m.loadWeekCmd(m.week.Weeks[idx-1].WeekKey)
	}
	return m, nil
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "add":
		if rest == "" {
			m.flash = "usage: add <chore>"
			return m, nil
		}
		return m, m.addChoreCmd(rest)
	case "remove":
		if rest == "" {
			m.flash = "usage: remove <chore>"
			return m, nil
		}
		return m, m.removeChoreCmd(rest)
	case "log":
		minutes, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			m.flash = "usage: log <minutes>"
			return m, nil
		}
		return m, m.logManualCmd(minutes, m.selectedChores())
	case "buy":
		if rest == "" {
			m.flash = "usage: buy <item>"
			return m, nil
		}
		return m, m.buyCmd(rest)
	case "theme":
		return m, m.useThemeCmd(rest)
	case "bg":
		return m, m.useBackgroundCmd(rest)
	case "rebirth":
		return m, m.rebirthCmd()
	case "week":
		m.activeTab = tabWeek
		return m, m.loadWeekCmd(rest)
	default:
		m.flash = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) applyTheme(themeID string) {
	if m.styles.Palette == theme.For(themeID) {
		return
	}
	m.styles = theme.NewStyles(theme.For(themeID))
	m.palette.SetStyles(m.styles)
	m.level.FullColor = string(m.styles.Palette.Accent)
	m.level.EmptyColor = string(m.styles.Palette.Surface)
}

func (m *Model) pruneSelection() {
	known := make(map[string]bool, len(m.chores))
	for _, c := range m.chores {
		known[c] = true
	}
	for name := range m.selected {
		if !known[name] {
			delete(m.selected, name)
		}
	}
	m.cursor = clamp(m.cursor, len(m.chores))
}

func (m Model) selectedChores() []string {
	var out []string
	for _, c := range m.chores {
		if m.selected[c] {
			out = append(out, c)
		}
	}
	return out
}

// elapsed extrapolates the last timer reading while it runs.
func (m Model) elapsed() time.Duration {
	if !m.hasTimer {
		return 0
	}
	if m.timer.Status != "running" || m.syncedAt.IsZero() {
		return m.timer.Elapsed
	}
	if d := m.now.Sub(m.syncedAt); d > 0 {
		return m.timer.Elapsed + d
	}
	return m.timer.Elapsed
}

func (m Model) elapsedSeconds() int {
	return int((m.elapsed().Milliseconds() + 500) / 1000)
}

// refreshPreview asks for a new reward preview when the inputs changed.
func (m *Model) refreshPreview() tea.Cmd {
	chores := m.selectedChores()
	k := fmt.Sprintf("%d|%s", m.elapsedSeconds(), strings.Join(chores, "\x1f"))
	if k == m.previewKey {
		return nil
	}
	m.previewKey = k
	return m.previewCmd(k, m.elapsedSeconds(), chores)
}

func savedNote(s economydto.SessionOutput) string {
	note := fmt.Sprintf("saved: +%d XP, +%d coins", s.XP, s.Coins)
	if s.BonusXP > 0 {
		note += fmt.Sprintf(" (daily bonus +%d)", s.BonusXP)
	}
	if s.UsedGoldenGloves {
		note += " · golden gloves used"
	}
	return note
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
