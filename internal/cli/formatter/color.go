package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityStyle colors a matrix quadrant: red for do-first, blue for
// schedule, yellow for delegate and dim for eliminate.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityUrgentImportant:
		return StyleRed
	case domain.PriorityNotUrgentImportant:
		return StyleBlue
	case domain.PriorityUrgentNotImportant:
		return StyleYellow
	default:
		return StyleDim
	}
}

// PriorityBadge returns a short colored quadrant marker such as "■ Urgent & Important".
func PriorityBadge(p domain.Priority) string {
	return PriorityStyle(p).Render("■ " + p.Label())
}

// StatusPill returns a colored task status indicator.
func StatusPill(s domain.TaskStatus) string {
	switch s {
	case domain.TaskTodo:
		return StyleBlue.Render("○ To Do")
	case domain.TaskInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.TaskCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render(string(s))
	}
}

// Header renders an uppercased section title with a dim underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
