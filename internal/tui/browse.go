package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkmn-tools/dexctl/internal/mutate"
	"github.com/pkmn-tools/dexctl/internal/query"
	"github.com/pkmn-tools/dexctl/internal/state"
)

// searchDebounce is how long the search input must be quiet before the
// listing is recomputed.
const searchDebounce = 250 * time.Millisecond

// debounceMsg fires when a scheduled search recompute comes due. Stale
// sequence numbers are dropped, so a new keystroke restarts the wait
// instead of queueing another recompute.
type debounceMsg struct {
	seq int
}

// row is one visible line of the browse listing.
type row struct {
	setID  string // set header row
	cardID string // card row
}

// BrowseModel is the interactive catalog browser. Queries stay
// synchronous and timer-agnostic; the debounce timer lives here, in the
// UI adapter.
type BrowseModel struct {
	engine *mutate.Engine
	st     *state.Store

	filter query.CatalogFilter
	groups []query.SetGroup
	rows   []row

	search    textinput.Model
	searching bool
	seq       int

	cursor int
	offset int
	height int
	status string
	err    error
}

// NewBrowse creates the browse model over loaded state.
func NewBrowse(engine *mutate.Engine, pocketSeries string) BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "search card or set…"
	ti.CharLimit = 80
	m := BrowseModel{
		engine: engine,
		st:     engine.State,
		filter: query.CatalogFilter{Ownership: state.FilterAll, PocketSeries: pocketSeries},
		search: ti,
		height: 24,
	}
	m.recompute()
	return m
}

func (m BrowseModel) Init() tea.Cmd { return nil }

// recompute runs the catalog query and rebuilds the visible rows from the
// groups and the expanded-set state.
func (m *BrowseModel) recompute() {
	m.groups = query.ListCatalog(m.st, m.filter)
	m.rows = m.rows[:0]
	for _, g := range m.groups {
		m.rows = append(m.rows, row{setID: g.Set.ID})
		if m.st.Filters.OpenSets[g.Set.ID] {
			for _, c := range g.Cards {
				m.rows = append(m.rows, row{cardID: c.ID})
			}
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case debounceMsg:
		if msg.seq != m.seq {
			return m, nil // superseded by a newer keystroke
		}
		m.filter.Search = m.search.Value()
		m.st.Filters.Search = m.filter.Search
		m.recompute()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m BrowseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		m.filter.Search = m.search.Value()
		m.st.Filters.Search = m.filter.Search
		m.recompute()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.seq++
	seq := m.seq
	debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
	return m, tea.Batch(cmd, debounce)
}

func (m BrowseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case "/":
		m.searching = true
		m.search.Focus()

	case "enter":
		if r := m.current(); r.setID != "" {
			m.st.Filters.ToggleSet(r.setID)
			m.recompute()
		}

	case " ":
		if r := m.current(); r.cardID != "" {
			m.toggleOwned(r.cardID)
		}

	case "w":
		if r := m.current(); r.cardID != "" {
			in, _, err := m.engine.ToggleWishlist(r.cardID)
			if err != nil {
				m.err = err
			} else if in {
				m.status = "added to wishlist"
			} else {
				m.status = "removed from wishlist"
			}
		}

	case "tab":
		m.filter.Ownership = nextOwnership(m.filter.Ownership)
		m.st.Filters.Ownership = m.filter.Ownership
		m.recompute()

	case "p":
		m.filter.HidePocket = !m.filter.HidePocket
		m.st.Filters.HidePocket = m.filter.HidePocket
		m.recompute()
	}
	return m, nil
}

// toggleOwned flips flat ownership for one card. The mutation persists
// before returning patches; only the affected rows are rebuilt.
func (m *BrowseModel) toggleOwned(cardID string) {
	var err error
	if m.st.IsOwned(cardID) {
		_, err = m.engine.SetUnowned(cardID)
		m.status = "removed " + cardID
	} else {
		_, err = m.engine.SetOwned(cardID)
		m.status = "added " + cardID
	}
	if err != nil {
		m.err = err
		return
	}
	// Under a have/missing filter the toggled card may leave the listing.
	if m.filter.Ownership != state.FilterAll {
		m.recompute()
	} else {
		for i := range m.groups {
			g := &m.groups[i]
			g.Owned = 0
			for _, c := range g.Cards {
				if m.st.IsOwned(c.ID) {
					g.Owned++
				}
			}
		}
	}
}

func (m BrowseModel) current() row {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}
	}
	return m.rows[m.cursor]
}

func (m BrowseModel) View() string {
	var b strings.Builder

	stats := query.CatalogStats(m.st, m.filter.HidePocket, m.filter.PocketSeries)
	b.WriteString(StyleHeader.Render("dexctl browse"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d/%d owned (%.1f%%)  filter:%s",
		stats.Owned, stats.Total, stats.Percent(), m.filter.Ownership)))
	if m.filter.HidePocket {
		b.WriteString(StyleDim.Render("  [pocket hidden]"))
	}
	b.WriteString("\n")
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	visible := m.height - 5
	if visible < 3 {
		visible = 3
	}
	offset := m.offset
	if m.cursor < offset {
		offset = m.cursor
	}
	if m.cursor >= offset+visible {
		offset = m.cursor - visible + 1
	}

	end := offset + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}
	if len(m.rows) == 0 {
		b.WriteString(StyleDim.Render("  nothing matches the current filters"))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(StyleHighlight.Render("! " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(StyleDim.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render("↑/↓ move · enter expand · space toggle owned · w wishlist · tab filter · p pocket · / search · q quit"))
	return b.String()
}

func (m BrowseModel) renderRow(i int) string {
	r := m.rows[i]
	selected := i == m.cursor
	prefix := "  "
	if selected {
		prefix = StyleHighlight.Render("> ")
	}

	if r.setID != "" {
		for _, g := range m.groups {
			if g.Set.ID != r.setID {
				continue
			}
			chevron := "▸"
			if m.st.Filters.OpenSets[r.setID] {
				chevron = "▾"
			}
			line := fmt.Sprintf("%s %s  %d/%d", chevron, g.Set.Name, g.Owned, len(g.Cards))
			if selected {
				return prefix + StyleHighlight.Render(line)
			}
			return prefix + StyleHeader.Render(line)
		}
		return prefix
	}

	card := m.st.CardIndex[r.cardID]
	if card == nil {
		return prefix
	}
	mark := StyleDim.Render("·")
	if m.st.IsOwned(card.ID) {
		mark = StyleOwned.Render("✓")
	}
	wish := ""
	if m.st.IsInWishlist(card.ID) {
		wish = StyleHighlight.Render(" ⭐")
	}
	line := fmt.Sprintf("  %s %-16s %s%s", mark, card.ID, card.Name, wish)
	if selected {
		return prefix + StyleHighlight.Render(line)
	}
	return prefix + StyleNormal.Render(line)
}

func nextOwnership(f state.OwnershipFilter) state.OwnershipFilter {
	switch f {
	case state.FilterAll:
		return state.FilterHave
	case state.FilterHave:
		return state.FilterMissing
	default:
		return state.FilterAll
	}
}

// RunBrowse launches the interactive catalog browser.
func RunBrowse(engine *mutate.Engine, pocketSeries string) error {
	p := tea.NewProgram(NewBrowse(engine, pocketSeries), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
