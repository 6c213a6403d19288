// Package search provides the main search view for the TUI.
package search

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/components/table"
	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
)

// BannerKind distinguishes failures from informational notices.
type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerInfo
	BannerError
)

// View is the search screen: query input, result table and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	table     *table.ResultTable
	statusbar *status.Bar

	controller    driving.SearchController
	actionService driving.ResultActionService
	ctx           context.Context

	limit  int
	width  int
	height int
	ready  bool
	focus  status.Focus

	banner     string
	bannerKind BannerKind
	prompt     string
	notice     string
	noticeErr  bool
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	controller driving.SearchController,
	actionService driving.ResultActionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		table:         table.NewResultTable(s),
		statusbar:     status.NewBar(s, km),
		controller:    controller,
		actionService: actionService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
		focus:         status.FocusInput,
	}
}

// WithContext sets the context searches and actions run under.
func (v *View) WithContext(ctx context.Context) *View {
	if ctx != nil {
		v.ctx = ctx
	}
	return v
}

// WithDefaults applies the persisted entity and limit.
func (v *View) WithDefaults(entity domain.EntityKind, limit int) *View {
	if entity.IsValid() {
		v.input.SetEntity(entity)
		v.statusbar.SetEntity(entity)
	}
	v.limit = limit
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.statusbar, cmd = v.statusbar.Update(msg)
		return v, cmd

	case messages.Signal:
		return v, v.handleSignal(msg)

	case messages.SearchFinished:
		v.handleSearchFinished(msg)
		return v, nil

	case messages.ActionCompleted:
		v.handleActionCompleted(msg)
		return v, nil
	}

	var cmd tea.Cmd
	if v.focus == status.FocusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

// handleSignal applies one presenter signal.
func (v *View) handleSignal(msg messages.Signal) tea.Cmd {
	switch msg := msg.(type) {
	case messages.LoadingChanged:
		if msg.IsLoading {
			return v.statusbar.BeginLoading()
		}
		v.statusbar.EndLoading()

	case messages.ErrorShown:
		v.banner = msg.Message
		v.bannerKind = BannerError
		if msg.Message == domain.MessageNoResults {
			v.bannerKind = BannerInfo
		}

	case messages.ErrorCleared:
		v.clearBanner()

	case messages.ResultsInfoShown:
		v.statusbar.SetResultsInfo(msg.Term, msg.Count)

	case messages.ResultsInfoCleared:
		v.statusbar.ClearResultsInfo()

	case messages.RowsChanged:
		v.table.SetItems(msg.Rows)
	}
	return nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	// The validation prompt blocks until acknowledged.
	if v.prompt != "" {
		if keymap.Matches(keyStr, v.keymap.Dismiss) || keymap.Matches(keyStr, v.keymap.Search) {
			v.prompt = ""
		}
		return v, nil
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.SwitchFocus):
		if v.focus == status.FocusInput {
			v.focusTable()
			return v, nil
		}
		return v, v.focusInput()

	case keymap.Matches(keyStr, v.keymap.Dismiss):
		v.clearBanner()
		v.notice = ""
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Search):
		return v, v.Search()
	}

	if v.focus == status.FocusInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	return v.handleTableKey(msg)
}

// handleTableKey processes keys while the result table is focused.
func (v *View) handleTableKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if column, ok := v.keymap.SortColumnFor(keyStr); ok {
		v.sortBy(column)
		return v, nil
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.CycleSort):
		v.sortBy(nextColumn(v.table.Sort().Column))
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Entity):
		v.statusbar.SetEntity(v.input.CycleEntity())
		return v, nil

	case keymap.Matches(keyStr, v.keymap.OpenPreview):
		return v, v.runAction("Opening preview...", driving.ResultActionService.OpenPreview)

	case keymap.Matches(keyStr, v.keymap.CopyPreview):
		return v, v.runAction("Preview URL copied", driving.ResultActionService.CopyPreviewURL)
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// Search returns a command running the current query through the controller.
// Presenter signals arrive separately; the command's own result is a
// SearchFinished message.
func (v *View) Search() tea.Cmd {
	query := domain.SearchQuery{
		Term:   v.input.Value(),
		Entity: v.input.Entity(),
		Limit:  v.limit,
	}
	controller := v.controller
	ctx := v.ctx

	return func() tea.Msg {
		if controller == nil {
			return messages.SearchFinished{Query: query, Err: ErrNoSearchController}
		}
		_, err := controller.Search(ctx, query)
		return messages.SearchFinished{Query: query, Err: err}
	}
}

// handleSearchFinished reacts to the outcome the controller returned.
// Display state for fetched outcomes is driven by presenter signals.
func (v *View) handleSearchFinished(msg messages.SearchFinished) {
	switch {
	case msg.Err == nil:
		if v.focus == status.FocusInput {
			v.focusTable()
		}
	case errors.Is(msg.Err, domain.ErrValidation):
		v.prompt = domain.UserMessage(msg.Err)
	case errors.Is(msg.Err, ErrNoSearchController):
		v.banner = msg.Err.Error()
		v.bannerKind = BannerError
	}
}

func (v *View) handleActionCompleted(msg messages.ActionCompleted) {
	if msg.Err != nil {
		v.notice = actionErrorMessage(msg.Err)
		v.noticeErr = true
		return
	}
	v.notice = msg.Message
	v.noticeErr = false
}

// runAction applies action to the selected row.
func (v *View) runAction(
	done string,
	action func(driving.ResultActionService, context.Context, *domain.ResultItem) error,
) tea.Cmd {
	item := v.table.Selected()
	if item == nil {
		return nil
	}
	svc := v.actionService
	ctx := v.ctx

	return func() tea.Msg {
		if svc == nil {
			return messages.ActionCompleted{Err: ErrNoActionService}
		}
		if err := action(svc, ctx, item); err != nil {
			return messages.ActionCompleted{Err: err}
		}
		return messages.ActionCompleted{Message: done}
	}
}

func actionErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "This item has no preview"
	case errors.Is(err, ErrNoActionService):
		return "Preview actions are not available"
	default:
		return fmt.Sprintf("Preview failed: %v", err)
	}
}

func (v *View) sortBy(column domain.SortColumn) {
	if v.controller == nil {
		return
	}
	v.controller.Sort(column)
	state := v.controller.SortState()
	v.table.SetSort(state)
	v.statusbar.SetSort(state)
}

// nextColumn returns the sortable column after c, wrapping around.
func nextColumn(c domain.SortColumn) domain.SortColumn {
	cols := domain.AllSortColumns()
	i := slices.Index(cols, c)
	return cols[(i+1)%len(cols)]
}

func (v *View) focusTable() {
	v.focus = status.FocusTable
	v.input.Blur()
	v.table.Focus()
	v.statusbar.SetFocus(status.FocusTable)
}

func (v *View) focusInput() tea.Cmd {
	v.focus = status.FocusInput
	v.table.Blur()
	v.statusbar.SetFocus(status.FocusInput)
	return v.input.Focus()
}

func (v *View) clearBanner() {
	v.banner = ""
	v.bannerKind = BannerNone
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)
	sections = append(sections, v.styles.Title.Render("tunesearch"), "", v.input.View(), "")

	if v.prompt != "" {
		sections = append(sections,
			v.styles.Prompt.Render(v.prompt+"\n\n"+v.styles.Muted.Render("Press enter or esc to continue")),
			"")
	}

	switch v.bannerKind {
	case BannerError:
		sections = append(sections, v.styles.ErrorBanner.Render(v.banner+"  (esc to dismiss)"), "")
	case BannerInfo:
		sections = append(sections, v.styles.InfoBanner.Render(v.banner), "")
	case BannerNone:
	}

	sections = append(sections, v.table.View())

	if detail := v.renderDetail(); detail != "" {
		sections = append(sections, detail)
	}

	if v.notice != "" {
		style := v.styles.Success
		if v.noticeErr {
			style = v.styles.Error
		}
		sections = append(sections, style.Render(v.notice))
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderDetail shows the links of the selected row.
func (v *View) renderDetail() string {
	if v.focus != status.FocusTable {
		return ""
	}
	item := v.table.Selected()
	if item == nil {
		return ""
	}
	row := item.Row()

	artwork := row.ArtworkURL
	if artwork == "" {
		artwork = domain.PlaceholderNA
	}
	return v.styles.Muted.Render(fmt.Sprintf("Artwork: %s\nPreview: %s", artwork, row.Preview))
}

// ApplyStyles refreshes components that cache styles.
func (v *View) ApplyStyles() {
	v.table.ApplyStyles()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	// Reserve space for header, input, banner, detail and status.
	v.table.SetDimensions(width, height-12)
	v.statusbar.SetWidth(width)
}

// SetQuery replaces the query text.
func (v *View) SetQuery(term string) {
	v.input.SetValue(term)
}

// Query returns the current query text.
func (v *View) Query() string {
	return v.input.Value()
}

// Entity returns the selected entity filter.
func (v *View) Entity() domain.EntityKind {
	return v.input.Entity()
}

// CapturesText reports whether printable keys are being typed into the input.
func (v *View) CapturesText() bool {
	return v.focus == status.FocusInput || v.prompt != ""
}

// Focus returns the focused pane.
func (v *View) Focus() status.Focus {
	return v.focus
}

// Banner returns the banner text and kind.
func (v *View) Banner() (string, BannerKind) {
	return v.banner, v.bannerKind
}

// Prompt returns the blocking validation prompt, or "".
func (v *View) Prompt() string {
	return v.prompt
}

// Notice returns the last action notice, or "".
func (v *View) Notice() string {
	return v.notice
}

// Loading returns whether a search is in flight.
func (v *View) Loading() bool {
	return v.statusbar.Loading()
}

// ResultsInfo returns the results summary shown in the status bar.
func (v *View) ResultsInfo() string {
	return v.statusbar.ResultsInfo()
}

// Items returns the rows shown in the table.
func (v *View) Items() []domain.ResultItem {
	return v.table.Items()
}

// SortState returns the sort shown in the table header.
func (v *View) SortState() domain.SortState {
	return v.table.Sort()
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
