package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rootdict/dict"
)

type focusArea int

const (
	focusKey focusArea = iota
	focusWords
	focusTable
)

// rowPrompt is the action chooser shown when the user activates a row. The
// choices come from the store, never recomputed here.
type rowPrompt struct {
	row     dict.Row
	actions []dict.Action
	cursor  int
}

type model struct {
	store *dict.Store

	keyInput   textinput.Model
	wordsInput textarea.Model
	rowsTable  table.Model
	rows       []dict.Row

	focus  focusArea
	prompt *rowPrompt
	status string
}

var (
	labelStyle    = lipgloss.NewStyle().Bold(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
	promptStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

func newModel(store *dict.Store) model {
	keyInput := textinput.New()
	keyInput.Placeholder = "root"
	keyInput.CharLimit = dict.MaxKeyLen
	keyInput.Width = 8
	keyInput.Focus()

	wordsInput := textarea.New()
	wordsInput.Placeholder = "word"
	wordsInput.ShowLineNumbers = false
	wordsInput.SetHeight(3)
	wordsInput.SetWidth(40)

	rowsTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Root", Width: 8},
			{Title: "Word", Width: 40},
		}),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Selected.Reverse(true)
	rowsTable.SetStyles(styles)

	m := model{
		store:      store,
		keyInput:   keyInput,
		wordsInput: wordsInput,
		rowsTable:  rowsTable,
	}
	m.refresh()
	return m
}

func (m *model) refresh() {
	m.rows = m.store.ListRows()
	tableRows := make([]table.Row, len(m.rows))
	for i, row := range m.rows {
		tableRows[i] = table.Row{strconv.Itoa(row.Position), row.Key, row.Value}
	}
	m.rowsTable.SetRows(tableRows)
}

func (m *model) setFocus(area focusArea) {
	m.focus = area
	m.keyInput.Blur()
	m.wordsInput.Blur()
	m.rowsTable.Blur()
	switch area {
	case focusKey:
		m.keyInput.Focus()
	case focusWords:
		m.wordsInput.Focus()
	case focusTable:
		m.rowsTable.Focus()
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if w := msg.Width - 20; w > 10 {
			m.wordsInput.SetWidth(w)
		}
		if h := msg.Height - 10; h > 3 {
			m.rowsTable.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		if m.prompt != nil {
			return m.updatePrompt(msg)
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.setFocus((m.focus + 1) % 3)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + 2) % 3)
			return m, nil
		case "ctrl+s":
			m.commit()
			return m, nil
		case "esc":
			if m.store.Editing() {
				m.store.CancelEdit()
				m.keyInput.SetValue("")
				m.wordsInput.Reset()
				m.status = "edit cancelled"
			}
			return m, nil
		}
		switch m.focus {
		case focusTable:
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "enter":
				m.openPrompt()
				return m, nil
			}
		case focusKey:
			if msg.String() == "enter" {
				m.setFocus(focusWords)
				return m, nil
			}
		}
	}
	return m.updateInputs(msg)
}

func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusKey:
		m.keyInput, cmd = m.keyInput.Update(msg)
		// reflect the cleaned key back, cursor at the end
		if cleaned := dict.NormalizeKey(m.keyInput.Value()); cleaned != m.keyInput.Value() {
			m.keyInput.SetValue(cleaned)
			m.keyInput.CursorEnd()
		}
	case focusWords:
		m.wordsInput, cmd = m.wordsInput.Update(msg)
	case focusTable:
		m.rowsTable, cmd = m.rowsTable.Update(msg)
	}
	return m, cmd
}

func (m *model) commit() {
	res, err := m.store.AddOrUpdate(m.keyInput.Value(), m.wordsInput.Value())
	if err != nil {
		m.status = err.Error()
		return
	}
	switch res {
	case dict.Saved, dict.AlreadyPresent:
		m.keyInput.SetValue("")
		m.wordsInput.Reset()
		m.refresh()
		m.status = res.String()
		m.setFocus(focusKey)
	default:
		m.status = "not saved: " + res.String()
	}
}

func (m *model) openPrompt() {
	i := m.rowsTable.Cursor()
	if i < 0 || i >= len(m.rows) {
		return
	}
	row := m.rows[i]
	m.prompt = &rowPrompt{
		row:     row,
		actions: m.store.AvailableActions(row.Key, row.Position),
	}
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.prompt
	switch msg.String() {
	case "left", "h":
		if p.cursor > 0 {
			p.cursor--
		}
	case "right", "l", "tab":
		if p.cursor < len(p.actions)-1 {
			p.cursor++
		}
	case "esc", "q", "ctrl+c":
		m.prompt = nil
	case "enter":
		m.applyAction(p.actions[p.cursor])
	}
	return m, nil
}

func (m *model) applyAction(action dict.Action) {
	row := m.prompt.row
	m.prompt = nil

	var (
		res dict.Result
		err error
	)
	switch action {
	case dict.ActionEdit:
		m.store.BeginEdit(row.Key, row.Value)
		m.keyInput.SetValue(row.Key)
		m.keyInput.CursorEnd()
		m.wordsInput.SetValue(row.Value)
		m.setFocus(focusKey)
		m.status = fmt.Sprintf("editing %s %s", row.Key, row.Value)
		return
	case dict.ActionDelete:
		res, err = m.store.Delete(row.Key, row.Value)
	case dict.ActionMoveUp:
		res, err = m.store.MoveUp(row.Key, row.Position)
	case dict.ActionMoveDown:
		res, err = m.store.MoveDown(row.Key, row.Position)
	case dict.ActionCancel:
		return
	}
	if err != nil {
		m.status = err.Error()
		return
	}
	m.refresh()
	m.status = action.String() + ": " + res.String()
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Root:"))
	b.WriteString(" ")
	b.WriteString(m.keyInput.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Words:"))
	b.WriteString("\n")
	b.WriteString(m.wordsInput.View())
	b.WriteString("\n\n")

	if m.prompt != nil {
		b.WriteString(promptStyle.Render(m.promptView()))
		b.WriteString("\n")
	} else {
		b.WriteString(m.rowsTable.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab: switch field • ctrl+s: save • enter on row: actions • ctrl+c: quit"))
	return b.String()
}

func (m model) promptView() string {
	p := m.prompt
	var parts []string
	for i, action := range p.actions {
		label := " " + action.String() + " "
		if i == p.cursor {
			label = selectedStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return fmt.Sprintf("%s %s: %s", p.row.Key, p.row.Value, strings.Join(parts, " "))
}
