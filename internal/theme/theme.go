// Package theme provides the light/dark color system for the pitui TUI.
//
// The active mode is resolved once at startup: an explicit --theme flag or
// the PITUI_THEME environment variable wins, then the config file, then
// best-effort terminal background detection (defaulting to light when the
// terminal does not answer). The user can flip modes at runtime; the toggle
// is never persisted.
package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// EnvVar overrides theme resolution when set to "light" or "dark".
const EnvVar = "PITUI_THEME"

// Mode is the visual mode. ModeAuto is only valid as a preference; a
// resolved mode is always light or dark.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Valid reports whether m is a recognized preference value.
func (m Mode) Valid() bool {
	switch m {
	case ModeAuto, ModeLight, ModeDark:
		return true
	}
	return false
}

// Toggle flips light and dark. Unresolved modes are returned unchanged.
func (m Mode) Toggle() Mode {
	switch m {
	case ModeLight:
		return ModeDark
	case ModeDark:
		return ModeLight
	}
	return m
}

// Glyph returns the icon shown in the header for the current mode.
func (m Mode) Glyph() string {
	if m == ModeDark {
		return "☾"
	}
	return "☀"
}

// Detect queries the terminal background and returns light or dark.
// Without a terminal to ask, the background query cannot succeed and
// HasDarkBackground would report dark unconditionally, so non-TTY stdout
// resolves to light before any query is attempted.
func Detect() Mode {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ModeLight
	}
	if lipgloss.HasDarkBackground() {
		return ModeDark
	}
	return ModeLight
}

// Resolve determines the active mode from an explicit override (flag), the
// PITUI_THEME environment variable, and the configured preference, falling
// back to terminal detection for "auto" or anything unrecognized.
func Resolve(preference Mode, override string) Mode {
	if m := Mode(override); m == ModeLight || m == ModeDark {
		return m
	}
	if m := Mode(os.Getenv(EnvVar)); m == ModeLight || m == ModeDark {
		return m
	}
	if preference == ModeLight || preference == ModeDark {
		return preference
	}
	return Detect()
}

// Palette holds the color tokens for one mode.
type Palette struct {
	Text      lipgloss.Color
	TextMuted lipgloss.Color
	Accent    lipgloss.Color
	Error     lipgloss.Color
	ErrorBg   lipgloss.Color
	Success   lipgloss.Color
	Border    lipgloss.Color
	Surface   lipgloss.Color
}

// Dark is the palette for dark terminal backgrounds.
var Dark = Palette{
	Text:      lipgloss.Color("#E6EBF2"),
	TextMuted: lipgloss.Color("#707D8C"),
	Accent:    lipgloss.Color("#76C7FF"),
	Error:     lipgloss.Color("#F06D79"),
	ErrorBg:   lipgloss.Color("#2B1518"),
	Success:   lipgloss.Color("#3DDC84"),
	Border:    lipgloss.Color("#3A4554"),
	Surface:   lipgloss.Color("#151A21"),
}

// Light is the palette for light terminal backgrounds.
var Light = Palette{
	Text:      lipgloss.Color("#1A1A1A"),
	TextMuted: lipgloss.Color("#666666"),
	Accent:    lipgloss.Color("#2B7CB8"),
	Error:     lipgloss.Color("#D93F4C"),
	ErrorBg:   lipgloss.Color("#FBE9EA"),
	Success:   lipgloss.Color("#2DA866"),
	Border:    lipgloss.Color("#C4CCD4"),
	Surface:   lipgloss.Color("#F5F7FA"),
}

// PaletteFor returns the palette for a resolved mode.
func PaletteFor(m Mode) Palette {
	if m == ModeDark {
		return Dark
	}
	return Light
}

// Styles holds every lipgloss style the TUI renders with. Rebuilt from the
// active palette whenever the mode changes so all elements stay consistent.
type Styles struct {
	Title   lipgloss.Style
	Glyph   lipgloss.Style
	Label   lipgloss.Style
	Prompt  lipgloss.Style
	Banner  lipgloss.Style
	Result  lipgloss.Style
	Value   lipgloss.Style
	Caption lipgloss.Style
	Footer  lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles derives the full style set for a mode.
func NewStyles(m Mode) Styles {
	p := PaletteFor(m)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Glyph: lipgloss.NewStyle().
			Foreground(p.Accent),
		Label: lipgloss.NewStyle().
			Foreground(p.Text),
		Prompt: lipgloss.NewStyle().
			Foreground(p.Accent),
		Banner: lipgloss.NewStyle().
			Foreground(p.Error).
			Background(p.ErrorBg).
			Padding(0, 1),
		Result: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Success),
		Caption: lipgloss.NewStyle().
			Foreground(p.TextMuted),
		Footer: lipgloss.NewStyle().
			Foreground(p.TextMuted),
		Help: lipgloss.NewStyle().
			Foreground(p.TextMuted),
	}
}
