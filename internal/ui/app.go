package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/five82/nexus/internal/dashboard"
	"github.com/five82/nexus/internal/insight"
	"github.com/five82/nexus/internal/prefs"
	"github.com/five82/nexus/internal/source"
	"github.com/five82/nexus/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewDashboard View = iota
	ViewDataSources
	ViewSettings
)

var viewOrder = []View{ViewDashboard, ViewDataSources, ViewSettings}

// Title is the header heading for the view.
func (v View) Title() string {
	switch v {
	case ViewDataSources:
		return "Data Connectors"
	case ViewSettings:
		return "Settings"
	default:
		return "Dashboard"
	}
}

// Label is the sidebar entry for the view.
func (v View) Label() string {
	switch v {
	case ViewDataSources:
		return "Data Sources"
	case ViewSettings:
		return "Settings"
	default:
		return "Dashboard"
	}
}

// dataTab selects the data-sources sub-view.
type dataTab int

const (
	tabFiles dataTab = iota
	tabDatabases
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Store        *state.Store
	Uploader     source.Uploader
	Connector    source.Connector
	Insights     insight.Service
	Logger       *slog.Logger
	Workspace    string
	UserInitials string
	ThemeName    string
	PrefsPath    string
	Now          func() time.Time
}

// statusLine is the most recent outcome shown in the command bar.
type statusLine struct {
	text string
	tone tone
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	uploader  source.Uploader
	connector source.Connector
	insights  insight.Service
	logger    *slog.Logger
	prefsPath string
	workspace string
	initials  string
	now       func() time.Time

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	sidebarOpen bool
	width       int
	height      int
	ready       bool
	showHelp    bool
	spinner     spinner.Model
	search      textinput.Model
	status      statusLine

	// Data state
	snapshot state.Snapshot

	// Dashboard state
	panels      []*insight.Panel
	showAnomaly bool

	// Data sources state
	activeTab dataTab
	fileTable table.Model
	form      connectionForm
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	store := opts.Store
	if store == nil {
		store = state.NewStore(nil, nil)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Slate"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	workspace := strings.TrimSpace(opts.Workspace)
	if workspace == "" {
		workspace = "Nexus BI"
	}
	initials := strings.TrimSpace(opts.UserInitials)
	if initials == "" {
		initials = "JD"
	}

	spin := spinner.New(spinner.WithSpinner(spinner.MiniDot))

	search := textinput.New()
	search.Placeholder = "Ask a question about your data..."
	search.Prompt = "⌕ "
	search.CharLimit = 200
	search.Width = 40

	m := Model{
		ctx:         ctx,
		store:       store,
		uploader:    opts.Uploader,
		connector:   opts.Connector,
		insights:    opts.Insights,
		logger:      logger,
		prefsPath:   prefsPath,
		workspace:   workspace,
		initials:    initials,
		now:         now,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		currentView: ViewDashboard,
		sidebarOpen: true,
		spinner:     spin,
		search:      search,
		panels: []*insight.Panel{
			insight.NewPanel(dashboard.RevenueTrendsTitle, dashboard.SalesDataset),
			insight.NewPanel(dashboard.SalesByCategoryTitle, dashboard.CategoryDataset),
		},
		activeTab: tabFiles,
		form:      newConnectionForm(),
		snapshot:  store.Snapshot(),
	}
	m.fileTable = newFileTable(m.theme)
	m.refreshFileTable()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(DefaultUIInterval),
		m.spinner.Tick,
		m.mountDashboard(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.refreshFileTable()
		return m, nil

	case tickMsg:
		m.snapshot = m.store.Snapshot()
		m.refreshFileTable()
		return m, tickCmd(DefaultUIInterval)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case insightMsg:
		m.resolveInsight(msg)
		return m, nil

	case uploadedMsg:
		m.handleUploaded(msg)
		return m, nil

	case connectionTestedMsg:
		m.handleConnectionTested(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if msg.Type == tea.KeyCtrlC {
		return m, m.quit()
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	if m.currentView == ViewDataSources && m.form.open {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.ViewDashboard):
		return m, m.setView(ViewDashboard)

	case key.Matches(msg, m.keys.ViewDataSources):
		return m, m.setView(ViewDataSources)

	case key.Matches(msg, m.keys.ViewSettings):
		return m, m.setView(ViewSettings)

	case key.Matches(msg, m.keys.Tab):
		return m, m.setView(m.nextView(1))

	case key.Matches(msg, m.keys.ShiftTab):
		return m, m.setView(m.nextView(-1))

	case key.Matches(msg, m.keys.ToggleSidebar):
		m.toggleSidebar()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()
	}

	switch m.currentView {
	case ViewDashboard:
		return m.handleDashboardKey(msg)
	case ViewDataSources:
		return m.handleDataSourcesKey(msg)
	}

	return m, nil
}

// handleSearchKey feeds the decorative search input. Nothing is ever queried.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// handleDashboardKey processes keyboard input for the dashboard view.
func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.RefreshInsights):
		return m, m.mountDashboard()
	case key.Matches(msg, m.keys.ToggleAnomaly):
		m.showAnomaly = !m.showAnomaly
	}
	return m, nil
}

// handleDataSourcesKey processes keyboard input for the data sources view.
func (m Model) handleDataSourcesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.FilesTab):
		m.activeTab = tabFiles
		return m, nil

	case key.Matches(msg, m.keys.ConnectionsTab):
		m.activeTab = tabDatabases
		return m, nil

	case m.activeTab == tabFiles && key.Matches(msg, m.keys.Upload):
		return m, m.uploadFile()

	case m.activeTab == tabDatabases && key.Matches(msg, m.keys.NewConnection):
		return m, m.toggleConnectionForm()

	case m.activeTab == tabFiles && key.Matches(msg, m.keys.Up, m.keys.Down):
		var cmd tea.Cmd
		m.fileTable, cmd = m.fileTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

// setView switches views, tearing down the transient state of the view being
// left. Selecting the active view is a no-op.
func (m *Model) setView(v View) tea.Cmd {
	if v == m.currentView {
		return nil
	}

	switch m.currentView {
	case ViewDashboard:
		m.teardownDashboard()
	case ViewDataSources:
		m.activeTab = tabFiles
		m.form.close()
	}

	m.logger.Debug("view changed", "from", m.currentView.Label(), "to", v.Label())
	m.currentView = v

	if v == ViewDashboard {
		return m.mountDashboard()
	}
	return nil
}

// nextView returns the view step positions away in sidebar order.
func (m Model) nextView(step int) View {
	for i, v := range viewOrder {
		if v == m.currentView {
			n := len(viewOrder)
			return viewOrder[((i+step)%n+n)%n]
		}
	}
	return ViewDashboard
}

func (m *Model) toggleSidebar() {
	m.sidebarOpen = !m.sidebarOpen
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.fileTable = applyTableTheme(m.fileTable, m.theme)
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// mountDashboard starts a fresh analysis for every chart panel.
func (m Model) mountDashboard() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.panels))
	for _, p := range m.panels {
		gen, task := p.Invoke(m.ctx, m.insights)
		cmds = append(cmds, waitInsightCmd(p.Title, gen, task))
	}
	return tea.Batch(cmds...)
}

func (m *Model) teardownDashboard() {
	for _, p := range m.panels {
		p.Teardown()
	}
	m.showAnomaly = false
}

func (m *Model) resolveInsight(msg insightMsg) {
	for _, p := range m.panels {
		if p.Title != msg.title {
			continue
		}
		if !p.Resolve(msg.gen, msg.result) {
			m.logger.Debug("dropped stale insight", "title", msg.title, "generation", msg.gen)
			return
		}
		if msg.result.Err != nil {
			m.logger.Warn("insight failed", "title", msg.title, "error", msg.result.Err)
		}
		return
	}
}

// uploadFile asks the uploader for a new file. The result arrives as an
// uploadedMsg and is prepended to the store.
func (m Model) uploadFile() tea.Cmd {
	uploader := m.uploader
	ctx := m.ctx
	return func() tea.Msg {
		if uploader == nil {
			return uploadedMsg{err: source.WrapUploadError("", errors.New("no uploader configured"))}
		}
		f, err := uploader.Upload(ctx, source.Upload{})
		return uploadedMsg{file: f, err: err}
	}
}

func (m *Model) handleUploaded(msg uploadedMsg) {
	err := msg.err
	if err == nil {
		err = m.store.PrependFile(msg.file)
	}
	if err != nil {
		m.store.RecordError(err)
		m.setStatus(fmt.Sprintf("Upload failed: %v", err), toneDanger)
		m.logger.Warn("upload failed", "error", err)
	} else {
		m.setStatus(fmt.Sprintf("Uploaded %s", msg.file.Name), toneInfo)
		m.logger.Info("file uploaded", "id", msg.file.ID, "name", msg.file.Name, "size", msg.file.Size)
	}
	m.snapshot = m.store.Snapshot()
	m.refreshFileTable()
}

// toggleConnectionForm shows or hides the new-connection form.
func (m *Model) toggleConnectionForm() tea.Cmd {
	if m.form.open {
		m.form.close()
		return nil
	}
	return m.form.show()
}

// handleFormKey processes keyboard input while the connection form is open.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.form.close()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m, m.saveConnection()

	case key.Matches(msg, m.keys.NextField):
		return m, m.form.focusNext(1)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.form.focusNext(-1)

	case m.form.focus == fieldKind && key.Matches(msg, m.keys.PrevKind):
		m.form.cycleKind(-1)
		return m, nil

	case m.form.focus == fieldKind && key.Matches(msg, m.keys.NextKind):
		m.form.cycleKind(1)
		return m, nil
	}

	return m, m.form.update(msg)
}

// saveConnection closes the form and tests the typed settings in the
// background. The connection list is left unchanged either way.
func (m *Model) saveConnection() tea.Cmd {
	cfg := m.form.config()
	m.form.close()

	connector := m.connector
	ctx := m.ctx
	return func() tea.Msg {
		if connector == nil {
			return connectionTestedMsg{cfg: cfg, err: source.WrapConnectionError(cfg, errors.New("no connector configured"))}
		}
		ctx, cancel := context.WithTimeout(ctx, ConnectionTestTimeout)
		defer cancel()
		conn, err := connector.Create(ctx, cfg)
		return connectionTestedMsg{cfg: cfg, conn: conn, err: err}
	}
}

func (m *Model) handleConnectionTested(msg connectionTestedMsg) {
	if msg.err != nil {
		m.store.RecordError(msg.err)
		m.snapshot = m.store.Snapshot()
		m.setStatus(fmt.Sprintf("Connection test failed: %v", msg.err), toneDanger)
		m.logger.Warn("connection test failed", "kind", msg.cfg.Kind, "error", msg.err)
		return
	}
	m.setStatus(fmt.Sprintf("Connection test passed for %q", msg.conn.Name), toneSuccess)
	m.logger.Info("connection test passed", "name", msg.conn.Name, "kind", msg.conn.Kind, "host", msg.conn.Host)
}

func (m *Model) setStatus(text string, t tone) {
	m.status = statusLine{text: text, tone: t}
}

// quit disposes pending work before exiting.
func (m Model) quit() tea.Cmd {
	for _, p := range m.panels {
		p.Teardown()
	}
	return tea.Quit
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	b.WriteString(m.renderContent())

	main := lipgloss.NewStyle().Width(m.contentWidth()).Render(b.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewDashboard:
		return m.renderDashboard()
	case ViewDataSources:
		return m.renderDataSources()
	case ViewSettings:
		return m.renderSettings()
	default:
		return ""
	}
}

func (m Model) sidebarWidth() int {
	if m.sidebarOpen {
		return SidebarOpenWidth
	}
	return SidebarCollapsedWidth
}

func (m Model) contentWidth() int {
	return maxInt(m.width-m.sidebarWidth(), 20)
}

func (m Model) contentHeight() int {
	return maxInt(m.height-2, 1)
}

// Messages

type tickMsg time.Time

type insightMsg struct {
	title  string
	gen    uint64
	result insight.Result
}

type uploadedMsg struct {
	file source.UploadedFile
	err  error
}

type connectionTestedMsg struct {
	cfg  source.ConnectionConfig
	conn source.DatabaseConnection
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitInsightCmd(title string, gen uint64, task *insight.Task) tea.Cmd {
	return func() tea.Msg {
		return insightMsg{title: title, gen: gen, result: task.Wait()}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}

	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
