package preview

import (
	"fmt"
	"math"
	"strings"

	"scheduleSheet/internal/schedule"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UI States
type state int

const (
	stateBrowse state = iota
	stateDetail
)

// UIConfig represents UI configuration settings
type UIConfig struct {
	RowsPerPage int
}

// listColumns are the fields shown in the browse list
var listColumns = []struct {
	key   string
	width int
}{
	{schedule.FieldEnvironment, 14},
	{schedule.FieldBatch, 10},
	{schedule.FieldStartDate, 11},
	{schedule.FieldEndDate, 11},
	{schedule.FieldStatus, 8},
	{schedule.FieldTask, 36},
}

type model struct {
	title   string
	fields  []schedule.Field
	records []schedule.Record

	// filter indexes environments; -1 shows all
	environments []string
	filter       int
	visible      []int

	state       state
	cursor      int
	page        int
	rowsPerPage int
	// maxRows is the configured page size; small windows shrink pages below it
	maxRows int

	width  int
	height int
}

func initialModel(title string, fields []schedule.Field, records []schedule.Record, uiConfig UIConfig) model {
	rowsPerPage := uiConfig.RowsPerPage
	if rowsPerPage <= 0 {
		rowsPerPage = 10
	}

	m := model{
		title:       title,
		fields:      fields,
		records:     records,
		filter:      -1,
		state:       stateBrowse,
		rowsPerPage: rowsPerPage,
		maxRows:     rowsPerPage,
	}

	seen := make(map[string]bool)
	for _, r := range records {
		env := r.Get(schedule.FieldEnvironment).String()
		if !seen[env] {
			seen[env] = true
			m.environments = append(m.environments, env)
		}
	}

	m.applyFilter()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.rowsPerPage = min(m.maxRows, max(m.height-8, 5))
		m.page = m.cursor / m.rowsPerPage
	case tea.KeyMsg:
		switch m.state {
		case stateBrowse:
			return m.updateBrowse(msg)
		case stateDetail:
			return m.updateDetail(msg)
		}
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case "left", "h":
		if m.page > 0 {
			m.cursor = (m.page - 1) * m.rowsPerPage
		}

	case "right", "l":
		if (m.page+1)*m.rowsPerPage < len(m.visible) {
			m.cursor = (m.page + 1) * m.rowsPerPage
		}

	case "f":
		// Cycle through environments, then back to all
		m.filter++
		if m.filter >= len(m.environments) {
			m.filter = -1
		}
		m.applyFilter()

	case "enter":
		if m.cursor < len(m.visible) {
			m.state = stateDetail
		}
	}

	m.page = m.cursor / m.rowsPerPage
	return m, nil
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "enter", "backspace":
		m.state = stateBrowse
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	}
	m.page = m.cursor / m.rowsPerPage
	return m, nil
}

func (m *model) applyFilter() {
	m.visible = nil
	for i, r := range m.records {
		if m.filter >= 0 && r.Get(schedule.FieldEnvironment).String() != m.environments[m.filter] {
			continue
		}
		m.visible = append(m.visible, i)
	}
	m.cursor = 0
	m.page = 0
}

func (m model) filterName() string {
	if m.filter < 0 {
		return "全部"
	}
	return m.environments[m.filter]
}

func (m model) View() string {
	switch m.state {
	case stateBrowse:
		return m.viewBrowse()
	case stateDetail:
		return m.viewDetail()
	}
	return ""
}

func (m model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	totalPages := int(math.Ceil(float64(len(m.visible)) / float64(m.rowsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("Page %d/%d · %d records · filter: %s",
		m.page+1, totalPages, len(m.visible), m.filterName())))
	b.WriteString("\n\n")

	var header []string
	for _, col := range listColumns {
		f, _ := schedule.FieldByKey(m.fields, col.key)
		header = append(header, pad(f.Header, col.width))
	}
	b.WriteString(headerStyle.Render(strings.Join(header, " ")))
	b.WriteString("\n")

	start := m.page * m.rowsPerPage
	end := start + m.rowsPerPage
	if end > len(m.visible) {
		end = len(m.visible)
	}

	for i := start; i < end; i++ {
		record := m.records[m.visible[i]]

		var cells []string
		for _, col := range listColumns {
			value := record.Get(col.key).String()
			if col.key == schedule.FieldStatus {
				status := schedule.NormalizeStatus(value)
				cells = append(cells, statusBadge(status)+strings.Repeat(" ", max(col.width-lipgloss.Width(status), 0)))
				continue
			}
			cells = append(cells, pad(value, col.width))
		}
		line := strings.Join(cells, " ")

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> ") + line)
		} else {
			b.WriteString(normalStyle.Render("  ") + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "↑↓: navigate | ←→: prev/next page | Enter: details | f: filter environment | q: quit"
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m model) viewDetail() string {
	var b strings.Builder

	if len(m.visible) == 0 {
		return helpStyle.Render("No records")
	}
	record := m.records[m.visible[m.cursor]]

	b.WriteString(titleStyle.Render(fmt.Sprintf("Record %d/%d", m.cursor+1, len(m.visible))))
	b.WriteString("\n\n")

	for _, f := range m.fields {
		value := record.Get(f.Key).String()
		if f.Key == schedule.FieldStatus {
			value = statusBadge(schedule.NormalizeStatus(value))
		}
		b.WriteString(labelStyle.Render(f.Header))
		b.WriteString(value)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑↓: previous/next record | Esc: back | q: quit"))

	return b.String()
}

// pad truncates or right-pads s to width display cells
func pad(s string, width int) string {
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "…"
	}
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

// Run starts the interactive record browser
func Run(title string, fields []schedule.Field, records []schedule.Record, uiConfig UIConfig) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to preview")
	}

	m := initialModel(title, fields, records, uiConfig)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %v", err)
	}
	return nil
}
