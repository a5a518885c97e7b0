package tui

import "github.com/charmbracelet/lipgloss"

// Color constants. aimed/reached match the chart series colors.
var (
	colorGreen   = lipgloss.Color("#10b981")
	colorYellow  = lipgloss.Color("#f59e0b")
	colorRed     = lipgloss.Color("#ef4444")
	colorGray    = lipgloss.Color("#6b7280")
	colorCyan    = lipgloss.Color("#06b6d4")
	colorWhite   = lipgloss.Color("#f8fafc")
	colorDark    = lipgloss.Color("#1e293b")
	colorAimed   = lipgloss.Color("#8e5ea2")
	colorReached = lipgloss.Color("#00c0ef")
)

// StyleHeader is the full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StylePanel is the bordered panel for the action list and controls.
var StylePanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorGray).
	Padding(0, 1)

// Utility styles.
var (
	StyleError = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(colorGray)
	StyleBold  = lipgloss.NewStyle().Bold(true)
)

// Named color styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	StyleCyan   = lipgloss.NewStyle().Foreground(colorCyan)
	StyleRed    = lipgloss.NewStyle().Foreground(colorRed)
)

// buttonKind mirrors the warning/danger/success button variants.
type buttonKind int

const (
	buttonWarning buttonKind = iota
	buttonDanger
	buttonSuccess
)

func (k buttonKind) String() string {
	switch k {
	case buttonDanger:
		return "danger"
	case buttonSuccess:
		return "success"
	default:
		return "warning"
	}
}

// button is a labelled action whose color tracks its state.
type button struct {
	Label string
	Kind  buttonKind
}

// ButtonStyle returns the background style for a button kind.
func ButtonStyle(k buttonKind) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Foreground(colorDark).Padding(0, 1)
	switch k {
	case buttonDanger:
		return base.Background(colorRed)
	case buttonSuccess:
		return base.Background(colorGreen)
	default:
		return base.Background(colorYellow)
	}
}

func (b button) render() string {
	return ButtonStyle(b.Kind).Render(b.Label)
}
