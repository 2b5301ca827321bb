package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quitlog/internal/window"
)

// styles holds every lipgloss style the screens use, built once from the
// theme handed to NewModel.
type styles struct {
	title      lipgloss.Style
	message    lipgloss.Style
	subtitle   lipgloss.Style
	counter    lipgloss.Style
	help       lipgloss.Style
	box        lipgloss.Style
	dayName    lipgloss.Style
	dayDate    lipgloss.Style
	rowCount   lipgloss.Style
	selected   lipgloss.Style
	inactive   lipgloss.Style
	chartBar   lipgloss.Style
	chartEmpty lipgloss.Style
	rangeLabel lipgloss.Style
	errText    lipgloss.Style
	inputLabel lipgloss.Style
}

func newStyles(th Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Foreground(th.Accent).
			Bold(true).
			Align(lipgloss.Center),
		message: lipgloss.NewStyle().
			Foreground(th.Text).
			Bold(true),
		subtitle: lipgloss.NewStyle().
			Foreground(th.TextSecondary),
		counter: lipgloss.NewStyle().
			Foreground(th.Accent).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Border).
			Padding(0, 3),
		help: lipgloss.NewStyle().
			Foreground(th.TextSecondary),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Border).
			Padding(0, 1),
		dayName: lipgloss.NewStyle().
			Foreground(th.Text).
			Bold(true),
		dayDate: lipgloss.NewStyle().
			Foreground(th.TextSecondary),
		rowCount: lipgloss.NewStyle().
			Foreground(th.Accent).
			Bold(true),
		selected: lipgloss.NewStyle().
			Foreground(th.Accent).
			Bold(true),
		inactive: lipgloss.NewStyle().
			Foreground(th.TextSecondary),
		chartBar: lipgloss.NewStyle().
			Foreground(th.Chart),
		chartEmpty: lipgloss.NewStyle().
			Foreground(th.ChartDim),
		rangeLabel: lipgloss.NewStyle().
			Foreground(th.TextSecondary).
			Align(lipgloss.Center),
		errText: lipgloss.NewStyle().
			Foreground(th.Danger),
		inputLabel: lipgloss.NewStyle().
			Foreground(th.Text).
			Bold(true),
	}
}

func (m *Model) frame() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

func (m *Model) trackerView() string {
	w, h := m.frame()

	if m.loading {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			m.styles.inactive.Render("Loading..."))
	}

	title, subtitle := UsageMessage(m.count)

	var sb strings.Builder
	sb.WriteString(m.styles.message.Render(title))
	sb.WriteString("\n")
	sb.WriteString(m.styles.subtitle.Render(subtitle))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.counter.Render(fmt.Sprintf("%d", m.count)))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.subtitle.Render("See past days → press l"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.help.Render("+: log usage | -: remove | l: logbook | s: settings | q: quit"))

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(sb.String())
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) logbookView() string {
	w, h := m.frame()

	if m.logbookLoading {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			m.styles.inactive.Render("Loading..."))
	}

	var sb strings.Builder
	sb.WriteString(m.styles.title.Width(w).Render("Logbook"))
	sb.WriteString("\n\n")
	sb.WriteString(m.chartView(w))
	sb.WriteString("\n")
	sb.WriteString(m.dayListView(h))
	sb.WriteString("\n")
	sb.WriteString(m.styles.help.Render("Navigate: Up/Down | +/-: adjust day | s: settings | Esc: back | q: quit"))

	return sb.String()
}

// chartView renders the usage trend for the charted days with the date range
// underneath, standing in for the original line chart.
func (m *Model) chartView(w int) string {
	series := window.ChartSeries(m.entries)
	label := window.DateRangeLabel(m.entries)

	chartWidth := min(w-6, 44)
	if chartWidth < 20 {
		chartWidth = 20
	}

	chart := m.renderChart(series, 5)
	if label != "" {
		chart += "\n" + m.styles.rangeLabel.Width(chartWidth).Render(label)
	}
	return m.styles.box.Width(chartWidth).Render(chart)
}

// renderChart draws one vertical bar per charted day, oldest on the left, in
// the manner of a terminal trend chart.
func (m *Model) renderChart(series []int, maxHeight int) string {
	maxCount := 0
	for _, n := range series {
		if n > maxCount {
			maxCount = n
		}
	}
	if len(series) == 0 || maxCount == 0 {
		return m.styles.inactive.Render("No usage in this range yet.")
	}

	yLabelWidth := len(fmt.Sprintf("%d", maxCount)) + 1

	var sb strings.Builder
	for row := maxHeight; row >= 1; row-- {
		threshold := float64(row) / float64(maxHeight)

		label := strings.Repeat(" ", yLabelWidth)
		if row == maxHeight {
			label = fmt.Sprintf("%*d ", yLabelWidth-1, maxCount)
		} else if row == 1 {
			label = fmt.Sprintf("%*s ", yLabelWidth-1, "0")
		}
		sb.WriteString(m.styles.inactive.Render(label))

		for _, n := range series {
			if float64(n)/float64(maxCount) >= threshold {
				sb.WriteString(m.styles.chartBar.Render("█ "))
			} else {
				sb.WriteString(m.styles.chartEmpty.Render("· "))
			}
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m *Model) dayListView(h int) string {
	if len(m.entries) == 0 {
		return m.styles.inactive.Render("  No days to show.")
	}

	// Rows left after the chart, title, and help line.
	visible := h - 14
	if visible < 4 {
		visible = 4
	}

	top := m.selected - visible + 1
	if top < 0 {
		top = 0
	}
	bottom := top + visible
	if bottom > len(m.entries) {
		bottom = len(m.entries)
	}

	var sb strings.Builder
	for i := top; i < bottom; i++ {
		e := m.entries[i]
		name := m.styles.dayName.Render(fmt.Sprintf("%-9s", e.Day))
		date := m.styles.dayDate.Render(fmt.Sprintf("%-7s", e.Date))
		count := m.styles.rowCount.Render(fmt.Sprintf("%3d", e.Count))

		marker := "  "
		line := fmt.Sprintf("%s%s %s  %s", marker, name, date, count)
		if i == m.selected {
			marker = "> "
			line = m.styles.selected.Render(fmt.Sprintf("%s%-9s %-7s  %3d", marker, e.Day, e.Date, e.Count))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if bottom < len(m.entries) {
		sb.WriteString(m.styles.inactive.Render(fmt.Sprintf("  ... %d older days", len(m.entries)-bottom)))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m *Model) settingsView() string {
	w, h := m.frame()

	var sb strings.Builder
	sb.WriteString(m.styles.inputLabel.Render("Tracking Start Date"))
	sb.WriteString("\n\n")
	sb.WriteString(m.dateInput.View())
	sb.WriteString("\n\n")
	if !m.startDate.IsZero() {
		sb.WriteString(m.styles.subtitle.Render("Currently: " + m.startDate.Format("Mon Jan 2 2006")))
		sb.WriteString("\n\n")
	}
	sb.WriteString(m.styles.subtitle.Render("This date determines how many historical days\nto show in your logbook. By default, tracking\nstarts from today."))
	if m.inputErr != "" {
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.errText.Render(m.inputErr))
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.help.Render("Enter: save | Esc: go back"))

	form := m.styles.title.Width(50).Render("Settings") + "\n\n" + sb.String()
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
		m.styles.box.Width(54).Render(form))
}
