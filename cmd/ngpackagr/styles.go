// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Material-inspired palette tuned for dark terminals. Markdown output goes
// through glamour, which applies the configured color scheme itself; these
// colors cover the hand-assembled lines around it.
const (
	ColorPrimary   = lipgloss.Color("#BB86FC") // titles, section headers
	ColorMuted     = lipgloss.Color("#8A8A8A") // secondary text
	ColorSuccess   = lipgloss.Color("#4CAF50") // success markers
	ColorError     = lipgloss.Color("#F44336") // failures
	ColorWarning   = lipgloss.Color("#FFB300") // warnings, caveats
	ColorHighlight = lipgloss.Color("#64B5F6") // paths, module IDs
	ColorVerbose   = lipgloss.Color("#BDBDBD") // verbose detail
)

// Shared lipgloss styles. Commands compose these instead of defining their
// own, so emphasis stays uniform across build, validate, ls and watch
// output.
var (
	TitleStyle            = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	SubtitleStyle         = lipgloss.NewStyle().Foreground(ColorMuted)
	SuccessStyle          = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle            = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	WarningStyle          = lipgloss.NewStyle().Foreground(ColorWarning)
	PathStyle             = lipgloss.NewStyle().Foreground(ColorHighlight)
	VerboseStyle          = lipgloss.NewStyle().Foreground(ColorVerbose)
	VerboseHighlightStyle = lipgloss.NewStyle().Foreground(ColorHighlight)
)
