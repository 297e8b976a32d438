package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/githubnext/calmhn/internal/prefs"
)

// palette is the small set of colors a theme is built from. The protanopia
// and deuteranopia palettes avoid red/green contrast and lean on
// blue/yellow instead.
type palette struct {
	accent lipgloss.AdaptiveColor
	text   lipgloss.AdaptiveColor
	dim    lipgloss.AdaptiveColor
	score  lipgloss.AdaptiveColor
	link   lipgloss.AdaptiveColor
	alert  lipgloss.AdaptiveColor
	barBg  lipgloss.AdaptiveColor
	barFg  lipgloss.AdaptiveColor
}

func paletteFor(mode prefs.Mode) palette {
	switch mode {
	case prefs.ModeProtanopia:
		return palette{
			accent: lipgloss.AdaptiveColor{Light: "#0072B2", Dark: "#56B4E9"},
			text:   lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#D0D0D0"},
			dim:    lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"},
			score:  lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#E6C229"},
			link:   lipgloss.AdaptiveColor{Light: "#0072B2", Dark: "#56B4E9"},
			alert:  lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#E6C229"},
			barBg:  lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"},
			barFg:  lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"},
		}
	case prefs.ModeDeuteranopia:
		return palette{
			accent: lipgloss.AdaptiveColor{Light: "#004488", Dark: "#77AADD"},
			text:   lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#D0D0D0"},
			dim:    lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"},
			score:  lipgloss.AdaptiveColor{Light: "#997700", Dark: "#DDCC77"},
			link:   lipgloss.AdaptiveColor{Light: "#004488", Dark: "#77AADD"},
			alert:  lipgloss.AdaptiveColor{Light: "#997700", Dark: "#DDCC77"},
			barBg:  lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"},
			barFg:  lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"},
		}
	default:
		return palette{
			accent: lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#F97316"},
			text:   lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#D0D0D0"},
			dim:    lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"},
			score:  lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"},
			link:   lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
			alert:  lipgloss.AdaptiveColor{Light: "#D00000", Dark: "#F25D94"},
			barBg:  lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"},
			barFg:  lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"},
		}
	}
}

// theme holds the rendered styles for the active display mode.
type theme struct {
	mode prefs.Mode

	header      lipgloss.Style
	headerDate  lipgloss.Style
	rank        lipgloss.Style
	title       lipgloss.Style
	selected    lipgloss.Style
	glyph       lipgloss.Style
	score       lipgloss.Style
	meta        lipgloss.Style
	domain      lipgloss.Style
	errorText   lipgloss.Style
	statusBar   lipgloss.Style
	statusAlert lipgloss.Style
	spinner     lipgloss.Style
	helpDim     lipgloss.Style
	helpCard    lipgloss.Style
}

func newTheme(mode prefs.Mode) theme {
	p := paletteFor(mode)
	return theme{
		mode: mode,

		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			PaddingLeft(1),

		headerDate: lipgloss.NewStyle().
			Foreground(p.dim),

		rank: lipgloss.NewStyle().
			Foreground(p.dim),

		title: lipgloss.NewStyle().
			Foreground(p.text),

		selected: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),

		glyph: lipgloss.NewStyle().
			Foreground(p.link),

		score: lipgloss.NewStyle().
			Foreground(p.score),

		meta: lipgloss.NewStyle().
			Foreground(p.dim),

		domain: lipgloss.NewStyle().
			Foreground(p.link),

		errorText: lipgloss.NewStyle().
			Foreground(p.alert),

		statusBar: lipgloss.NewStyle().
			Background(p.barBg).
			Foreground(p.barFg).
			PaddingLeft(1).
			PaddingRight(1),

		statusAlert: lipgloss.NewStyle().
			Foreground(p.alert),

		spinner: lipgloss.NewStyle().
			Foreground(p.accent),

		helpDim: lipgloss.NewStyle().
			Foreground(p.dim),

		helpCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.dim).
			Padding(1, 2),
	}
}
