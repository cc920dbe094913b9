package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/tinyplayerss/hyteserve/internal/catalog"
	"github.com/tinyplayerss/hyteserve/internal/config"
	"github.com/tinyplayerss/hyteserve/internal/prefs"
	"github.com/tinyplayerss/hyteserve/internal/source"
	"github.com/tinyplayerss/hyteserve/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewDetail
	ViewActivity
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Client      *source.Client
	Store       *state.Store
	Config      *config.Config
	Logger      *zap.Logger
	ThemeName   string
	PrefsPath   string
	StartSource source.Source
	StartCard   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *source.Client
	store     *state.Store
	config    *config.Config
	logger    *zap.Logger
	prefsPath string

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time
	loading     bool

	// Filter state
	searchInput textinput.Model
	searching   bool
	filter      catalog.Filter
	filtered    []int // indexes into snapshot.Items
	tagCounts   []catalog.TagCount
	showTags    bool
	tagCursor   int

	// List state
	pager       paginator.Model
	selectedRow int // within the visible page

	// Routing state
	history   []route
	histPos   int
	startCard string

	// Detail state
	detailViewport viewport.Model
	renderer       *glamour.TermRenderer

	// Activity state
	activityViewport viewport.Model
	activityLines    []string

	// Chrome
	spin     spinner.Model
	showHelp bool
	status   string
	statusAt time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Hytale"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	startSource := opts.StartSource
	if startSource.Name == "" {
		startSource = source.Default()
	}

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "title or author"
	search.CharLimit = 64

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	pager := paginator.New()
	pager.Type = paginator.Dots

	return Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		config:    opts.Config,
		logger:    logger,
		prefsPath: prefsPath,

		theme:       GetTheme(themeName),
		currentView: ViewList,

		searchInput: search,
		filter:      catalog.Filter{Tags: map[string]struct{}{}},
		pager:       pager,

		history:   []route{{source: startSource.Name}},
		histPos:   0,
		startCard: opts.StartCard,

		spin: sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initViewports()
		}
		m.ready = true
		m.resizeViewports()
		m.rebuildRenderer()
		m.updateDetailViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case catalogMsg:
		m.loading = false
		if m.store != nil {
			m.store.SetCatalog(msg.src, msg.items, msg.err)
		}
		if msg.err != nil {
			m.setStatus("Could not load " + msg.src.Name + " catalog")
			m.logger.Warn("catalog load failed",
				zap.String("source", msg.src.Name), zap.Error(msg.err))
		}
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store)
		}
		return m, nil

	case linkCopiedMsg:
		if msg.err != nil {
			m.setStatus("Clipboard unavailable")
		} else {
			m.setStatus("Link copied: " + msg.permalink)
		}
		return m, nil

	case activityMsg:
		m.activityLines = msg
		m.updateActivityViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
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

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewDetail:
		return m.renderDetail()
	case ViewActivity:
		return m.renderActivity()
	default:
		return m.renderList()
	}
}

// applySnapshot installs a fresh snapshot and recomputes everything derived
// from it: the filtered index list, tag counts, pagination, and the pending
// startup permalink.
func (m *Model) applySnapshot(snap state.Snapshot) {
	sourceChanged := snap.Source.Name != m.snapshot.Source.Name
	m.snapshot = snap
	m.lastUpdated = time.Now()

	if sourceChanged {
		m.resetFilter()
	}
	m.refilter()

	if m.startCard != "" && snap.HasCatalog {
		m.restoreCard(m.startCard)
		m.startCard = ""
	}
}

// refilter recomputes the visible index list from the current filter and
// clamps pagination to it.
func (m *Model) refilter() {
	m.filtered = m.filter.ApplyIndexes(m.snapshot.Items)
	m.tagCounts = catalog.TagCounts(m.snapshot.Items)

	pageSize := m.pageSize()
	pages := catalog.PageCount(len(m.filtered), pageSize)
	m.pager.PerPage = pageSize
	// SetTotalPages takes the item count, not the page count.
	if len(m.filtered) == 0 {
		m.pager.TotalPages = 1
	} else {
		m.pager.SetTotalPages(len(m.filtered))
	}
	if pages == 0 {
		m.pager.Page = 0
	} else if m.pager.Page >= pages {
		m.pager.Page = pages - 1
	}
	m.clampCursor()
	if m.tagCursor >= len(m.tagCounts) {
		m.tagCursor = maxInt(len(m.tagCounts)-1, 0)
	}
}

func (m *Model) resetFilter() {
	m.filter = catalog.Filter{Tags: map[string]struct{}{}}
	m.searchInput.SetValue("")
	m.searching = false
	m.showTags = false
	m.tagCursor = 0
	m.selectedRow = 0
	m.pager.Page = 0
}

// pageItems returns the indexes visible on the current page. The pager is
// zero-indexed; the pagination helpers count pages from 1.
func (m Model) pageItems() []int {
	return catalog.PageIndexes(m.filtered, m.pager.Page+1, m.pageSize())
}

func (m Model) pageSize() int {
	if m.config != nil && m.config.PageSize > 0 {
		return m.config.PageSize
	}
	return 10
}

func (m *Model) clampCursor() {
	visible := len(m.pageItems())
	if visible == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow >= visible {
		m.selectedRow = visible - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// selectedIndex returns the snapshot index of the highlighted row, or -1.
func (m Model) selectedIndex() int {
	page := m.pageItems()
	if m.selectedRow < 0 || m.selectedRow >= len(page) {
		return -1
	}
	return page[m.selectedRow]
}

// selectedItem returns the highlighted item, or nil.
func (m Model) selectedItem() *catalog.Item {
	idx := m.selectedIndex()
	if idx < 0 || idx >= len(m.snapshot.Items) {
		return nil
	}
	return &m.snapshot.Items[idx]
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd()}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.status != "" && time.Since(m.statusAt) > 4*time.Second {
		m.status = ""
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusAt = time.Now()
}

func (m *Model) initViewports() {
	m.detailViewport = viewport.New(m.width, m.contentHeight())
	m.activityViewport = viewport.New(m.width, m.contentHeight())
}

func (m *Model) resizeViewports() {
	m.detailViewport.Width = m.width
	m.detailViewport.Height = m.contentHeight()
	m.activityViewport.Width = m.width
	m.activityViewport.Height = m.contentHeight()
}

// contentHeight is the rows left between header and footer.
func (m Model) contentHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) rebuildRenderer() {
	wrap := m.width - 4
	if wrap < 20 {
		wrap = 20
	}
	m.renderer, _ = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type catalogMsg struct {
	src   source.Source
	items []catalog.Item
	err   error
}

type linkCopiedMsg struct {
	permalink string
	err       error
}

type activityMsg []string

// Commands

const refreshTick = time.Second

func tickCmd() tea.Cmd {
	return tea.Tick(refreshTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func loadCatalogCmd(ctx context.Context, client *source.Client, src source.Source) tea.Cmd {
	return func() tea.Msg {
		items, err := client.FetchCatalog(ctx, src)
		return catalogMsg{src: src, items: items, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}
