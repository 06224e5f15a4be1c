package components

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/theme"
)

// RowSelectedMsg reports that a table row was chosen with enter.
type RowSelectedMsg struct {
	ID    string
	Index int
	Row   []string
}

// Column describes a table column.
type Column struct {
	Title string
	Width int
}

// Table presents tabular data with a highlighted cursor row. Zebra striping
// tints every other row; the compact variant drops cell padding for dense
// data.
type Table struct {
	id      string
	inner   table.Model
	columns []Column
	rows    [][]string
	zebra   bool
	compact bool
	focused bool
}

// NewTable creates a table with the given columns.
func NewTable(id string, columns ...Column) *Table {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}
	inner := table.New(
		table.WithColumns(cols),
		table.WithHeight(8),
	)
	t := &Table{id: id, inner: inner, columns: columns}
	t.restyle()
	return t
}

// WithZebra enables alternate-row striping.
func (t *Table) WithZebra() *Table {
	t.zebra = true
	t.applyRows()
	return t
}

// WithCompact removes cell padding.
func (t *Table) WithCompact() *Table {
	t.compact = true
	t.restyle()
	return t
}

// WithHeight sets the number of visible rows.
func (t *Table) WithHeight(height int) *Table {
	if height > 0 {
		t.inner.SetHeight(height)
	}
	return t
}

// SetRows replaces the table data.
func (t *Table) SetRows(rows [][]string) {
	t.rows = rows
	t.applyRows()
}

// Cursor returns the index of the highlighted row.
func (t *Table) Cursor() int { return t.inner.Cursor() }

// SelectedRow returns the highlighted row's cells, or nil when empty.
func (t *Table) SelectedRow() []string {
	if len(t.rows) == 0 {
		return nil
	}
	return t.rows[t.inner.Cursor()]
}

// Focused reports whether the table handles keys.
func (t *Table) Focused() bool { return t.focused }

// Focus makes the table handle keys.
func (t *Table) Focus() {
	t.focused = true
	t.inner.Focus()
}

// Blur stops the table from handling keys.
func (t *Table) Blur() {
	t.focused = false
	t.inner.Blur()
}

func (t *Table) restyle() {
	th := theme.Current()

	styles := table.DefaultStyles()
	styles.Header = theme.StyleWith(th, lipgloss.NewStyle(),
		theme.Typography(theme.TypographySubtitle),
		theme.Border(theme.BorderNormal),
		theme.BorderForeground(theme.Neutral),
	).BorderTop(false).BorderLeft(false).BorderRight(false).Bold(true)
	styles.Selected = th.Apply(lipgloss.NewStyle(), theme.KindTable, theme.VariantPrimary, theme.StateActive)
	styles.Cell = lipgloss.NewStyle()
	if !t.compact {
		styles.Header = styles.Header.PaddingLeft(1).PaddingRight(1)
		styles.Cell = styles.Cell.PaddingLeft(1).PaddingRight(1)
		styles.Selected = styles.Selected.PaddingLeft(0).PaddingRight(0)
	}
	t.inner.SetStyles(styles)
}

// applyRows pushes the data into the embedded model, pre-tinting the cells
// of every other row when striping is on.
func (t *Table) applyRows() {
	th := theme.Current()
	stripe := theme.StyleWith(th, lipgloss.NewStyle(), theme.MutedForeground(theme.Surface))

	rows := make([]table.Row, len(t.rows))
	for i, cells := range t.rows {
		row := make(table.Row, len(cells))
		for j, cell := range cells {
			if t.zebra && i%2 == 1 {
				row[j] = stripe.Render(cell)
			} else {
				row[j] = cell
			}
		}
		rows[i] = row
	}
	t.inner.SetRows(rows)
	if t.inner.Cursor() >= len(rows) && len(rows) > 0 {
		t.inner.SetCursor(len(rows) - 1)
	}
}

// Init implements Component.
func (t *Table) Init() tea.Cmd { return nil }

// Update forwards navigation keys to the embedded model and emits
// RowSelectedMsg on enter.
func (t *Table) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused {
		return nil
	}

	if keyMsg.Type == tea.KeyEnter {
		row := t.SelectedRow()
		if row == nil {
			return nil
		}
		id, index := t.id, t.inner.Cursor()
		return func() tea.Msg { return RowSelectedMsg{ID: id, Index: index, Row: row} }
	}

	var cmd tea.Cmd
	t.inner, cmd = t.inner.Update(msg)
	return cmd
}

// View renders the table in its frame.
func (t *Table) View() string {
	th := theme.Current()
	state := theme.StateNormal
	if t.focused {
		state = theme.StateFocused
	}
	return th.Apply(lipgloss.NewStyle(), theme.KindTable, theme.VariantNeutral, state).
		Render(t.inner.View())
}
