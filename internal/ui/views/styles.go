package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	SearchBox     lipgloss.Style
	SearchFocused lipgloss.Style
	Panel         lipgloss.Style
	Candidate     lipgloss.Style
	Selected      lipgloss.Style
	Region        lipgloss.Style
	Location      lipgloss.Style
	Country       lipgloss.Style
	Temperature   lipgloss.Style
	Condition     lipgloss.Style
	Stat          lipgloss.Style
	Section       lipgloss.Style
	DayCard       lipgloss.Style
	DayLabel      lipgloss.Style
	DayTemp       lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("51")).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("250")).
			Padding(0, 1),
		Candidate: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true),
		Region:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Location: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Country:  lipgloss.NewStyle().Foreground(lipgloss.Color("251")),
		Temperature: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")),
		Condition: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Stat:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).MarginRight(3),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		DayCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("30")).
			Padding(0, 1).
			Align(lipgloss.Center).
			Width(10),
		DayLabel:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DayTemp:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
	}
}

// TemperatureColor returns a foreground color for a temperature in Celsius
func TemperatureColor(tempC float64) string {
	switch {
	case tempC <= 0:
		return "51" // cyan
	case tempC < 15:
		return "39" // blue
	case tempC < 25:
		return "78" // green
	case tempC < 32:
		return "214" // yellow
	default:
		return "203" // red
	}
}
