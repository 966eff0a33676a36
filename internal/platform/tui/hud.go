package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/voicerun/internal/core"
)

// HUD layout constants
const (
	hudHeight      = 2     // Meter line plus help line below the playfield
	meterFullScale = 100.0 // Volume that fills the meter
	meterLabel     = "voice "
	minMeterWidth  = 10
)

var (
	statusOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hudHelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// VoiceStatus is what the HUD shows about the audio side.
type VoiceStatus struct {
	Label string
	OK    bool
}

// HUD draws the voice meter, the audio status and key help under the
// playfield.
type HUD struct {
	meter progress.Model
	help  help.Model
	keys  KeyMap
	width int
}

// NewHUD creates a HUD for the given key bindings.
func NewHUD(keys KeyMap, width int) HUD {
	h := HUD{
		meter: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:  help.New(),
		keys:  keys,
	}
	h.SetWidth(width)
	return h
}

// SetWidth fits the HUD to the terminal width.
func (h *HUD) SetWidth(width int) {
	h.width = width
	h.help.Width = width
	h.meter.Width = max(minMeterWidth, width/2)
}

// MeterPercent converts a volume to the meter's fill fraction.
func MeterPercent(volume float64) float64 {
	return core.ClampF(volume/meterFullScale, 0, 1)
}

// View renders both HUD lines.
func (h HUD) View(level float64, status VoiceStatus) string {
	style := statusOKStyle
	if !status.OK {
		style = statusWarnStyle
	}

	var b strings.Builder
	b.WriteString(meterLabel)
	b.WriteString(h.meter.ViewAs(MeterPercent(level)))
	fmt.Fprintf(&b, " %5.1f  ", level)
	b.WriteString(style.Render(status.Label))
	b.WriteRune('\n')
	b.WriteString(hudHelpStyle.Render(h.help.View(h.keys)))
	return b.String()
}
