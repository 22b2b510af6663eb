package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytraddan/storefront/internal/catalog"
	"github.com/ytraddan/storefront/internal/config"
	"github.com/ytraddan/storefront/internal/fakestore"
	"github.com/ytraddan/storefront/internal/prefs"
)

// View represents the current active view.
type View int

const (
	ViewCatalog View = iota
	ViewDetail
	ViewForm
)

// priceSteps are the minimum-price settings the price key cycles through.
var priceSteps = []float64{0, 10, 25, 50, 100}

// noticeWindow is how long an undo notice stays actionable.
const noticeWindow = 5 * time.Second

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *catalog.Store
	Coordinator *catalog.Coordinator
	Config      *config.Config
	Filters     catalog.Filters
	ThemeName   string
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *catalog.Store
	coord     *catalog.Coordinator
	config    *config.Config
	prefsPath string

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Data state
	snapshot catalog.Snapshot
	filters  catalog.Filters
	view     catalog.View

	// Catalog state
	selected  int
	search    textinput.Model
	searching bool

	// Detail state
	detailID int

	// Form state
	form formState

	// Undo notice
	notice notice

	// Channels re-armed after every receipt
	changes <-chan struct{}
	events  <-chan catalog.Event
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	filters := opts.Filters
	if filters == (catalog.Filters{}) {
		filters = catalog.DefaultFilters()
	}

	search := textinput.New()
	search.Placeholder = "Search for products..."
	search.CharLimit = 64
	search.SetValue(filters.SearchTerm)

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		coord:       opts.Coordinator,
		config:      opts.Config,
		prefsPath:   prefsPath,
		theme:       GetTheme(opts.ThemeName),
		keys:        DefaultKeyMap(),
		currentView: ViewCatalog,
		filters:     filters,
		search:      search,
	}
	if opts.Store != nil {
		// Register the watch before taking the first snapshot: a mutation
		// landing between the two leaves a pending signal instead of being
		// lost. The initial fetch is already running when New is called.
		m.changes = opts.Store.Watch()
		m.snapshot = opts.Store.Snapshot()
	}
	if opts.Coordinator != nil {
		m.events = opts.Coordinator.Events()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(),
	}
	if m.changes != nil {
		cmds = append(cmds, watchCmd(m.changes))
	}
	if m.events != nil {
		cmds = append(cmds, eventsCmd(m.events))
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
		m.ready = true
		m.recompute()
		return m, nil

	case storeChangedMsg:
		m.snapshot = m.store.Snapshot()
		m.recompute()
		return m, watchCmd(m.changes)

	case mutationEventMsg:
		ev := catalog.Event(msg)
		if ev.Err != nil {
			// The optimistic write is already rolled back; tell the user.
			m.notice = errorNotice(ev)
		}
		return m, eventsCmd(m.events)

	case fetchDoneMsg:
		// Lifecycle state arrives through the store watch; nothing to do.
		return m, nil

	case tickMsg:
		if m.notice.active() && time.Now().After(m.notice.until) {
			m.notice = notice{}
		}
		return m, tickCmd()
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

	switch m.currentView {
	case ViewDetail:
		return m.renderDetail()
	case ViewForm:
		return m.renderForm()
	default:
		return m.renderCatalog()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.currentView == ViewForm {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.fetchCmd()

	case key.Matches(msg, m.keys.Undo):
		m.undoNotice()
		return m, nil
	}

	switch m.currentView {
	case ViewDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleCatalogKey(msg)
	}
}

// handleCatalogKey processes keyboard input for the catalog view.
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		if m.filters.SearchTerm != "" {
			m.setSearchTerm("")
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.view.Page)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if n := len(m.view.Page); n > 0 {
			m.selected = n - 1
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.filters = m.filters.WithPage(m.filters.CurrentPage + 1)
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.filters = m.filters.WithPage(m.filters.CurrentPage - 1)
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.Category):
		m.cycleCategory()
		return m, nil

	case key.Matches(msg, m.keys.Price):
		m.cyclePrice()
		return m, nil

	case key.Matches(msg, m.keys.FavoritesOnly):
		m.filters = m.filters.WithFavoritesOnly(!m.filters.FavoritesOnly)
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.ViewMode):
		if m.filters.ViewMode == catalog.ViewGrid {
			m.filters = m.filters.WithViewMode(catalog.ViewList)
		} else {
			m.filters = m.filters.WithViewMode(catalog.ViewGrid)
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		m.filters = m.filters.Clear()
		m.search.SetValue("")
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.Favorite):
		if p, ok := m.selectedProduct(); ok {
			m.store.ToggleFavorite(p.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if p, ok := m.selectedProduct(); ok {
			m.detailID = p.ID
			m.currentView = ViewDetail
			return m, m.refreshOneCmd(p.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.openCreateForm()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if p, ok := m.selectedProduct(); ok {
			m.openEditForm(p)
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if p, ok := m.selectedProduct(); ok {
			m.deleteProduct(p.ID)
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey routes input to the search box while it is focused.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.setSearchTerm(m.search.Value())
	return m, cmd
}

// setSearchTerm pushes a new search term into the filter state.
func (m *Model) setSearchTerm(term string) {
	if term == "" {
		m.search.SetValue("")
	}
	m.filters = m.filters.WithSearchTerm(term)
	m.recompute()
}

// cycleCategory advances the category filter through all → each category → all.
func (m *Model) cycleCategory() {
	categories := m.view.Categories
	if len(categories) == 0 {
		return
	}
	next := catalog.CategoryAll
	if m.filters.Category == catalog.CategoryAll {
		next = categories[0]
	} else {
		for i, c := range categories {
			if c == m.filters.Category && i+1 < len(categories) {
				next = categories[i+1]
				break
			}
		}
	}
	m.filters = m.filters.WithCategory(next)
	m.recompute()
}

// cyclePrice advances the minimum price through the preset steps.
func (m *Model) cyclePrice() {
	next := priceSteps[0]
	for i, step := range priceSteps {
		if m.filters.MinPrice == step && i+1 < len(priceSteps) {
			next = priceSteps[i+1]
			break
		}
	}
	m.filters = m.filters.WithMinPrice(next)
	m.recompute()
}

// deleteProduct removes the product optimistically and arms the undo notice.
func (m *Model) deleteProduct(id int) {
	cmd, err := m.coord.Delete(m.ctx, id)
	if err != nil {
		m.notice = failureNotice("Delete failed", err)
		return
	}
	m.notice = undoNotice(cmd)
}

// undoNotice compensates the mutation the current notice points at.
func (m *Model) undoNotice() {
	if !m.notice.active() || m.notice.undo == nil {
		return
	}
	cmd := m.notice.undo
	m.notice = notice{}
	if err := cmd.Compensate(); err != nil {
		m.notice = failureNotice("Undo failed", err)
		return
	}
	m.notice = plainNotice("Change undone")
}

// selectedProduct returns the product under the cursor.
func (m Model) selectedProduct() (fakestore.Product, bool) {
	if m.selected < 0 || m.selected >= len(m.view.Page) {
		return fakestore.Product{}, false
	}
	return m.view.Page[m.selected], true
}

// recompute re-derives the visible page and re-clamps selection and page.
func (m *Model) recompute() {
	m.view = catalog.Derive(m.snapshot, m.filters, m.itemsPerPage())
	m.filters.CurrentPage = m.view.CurrentPage
	if m.selected >= len(m.view.Page) {
		m.selected = len(m.view.Page) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// itemsPerPage picks the page size: a config pin wins, otherwise the terminal
// width decides.
func (m Model) itemsPerPage() int {
	if m.config != nil && m.config.ItemsPerPage > 0 {
		return m.config.ItemsPerPage
	}
	switch {
	case m.width >= 120:
		return 8
	case m.width >= 80:
		return 6
	default:
		return 4
	}
}

// savePrefs persists the current filter dimensions and theme.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.FromFilters(m.filters, m.theme.Name))
}

// Messages

type tickMsg time.Time

type storeChangedMsg struct{}

type mutationEventMsg catalog.Event

type fetchDoneMsg struct{ err error }

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func watchCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return storeChangedMsg{}
	}
}

func eventsCmd(ch <-chan catalog.Event) tea.Cmd {
	return func() tea.Msg {
		return mutationEventMsg(<-ch)
	}
}

func (m Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		return fetchDoneMsg{err: m.coord.FetchAll(m.ctx)}
	}
}

func (m Model) refreshOneCmd(id int) tea.Cmd {
	return func() tea.Msg {
		return fetchDoneMsg{err: m.coord.FetchOne(m.ctx, id)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
