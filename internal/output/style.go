package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1"))
	remoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// DisableColors renders every style as plain text
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorError highlights error text white on red
func ColorError(text string) string {
	return errorStyle.Render(text)
}

// ColorRemoteName colors a remote name
func ColorRemoteName(name string) string {
	return remoteStyle.Render(name)
}

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return currentStyle.Render(branchName + " (current)")
	}
	return branchStyle.Render(branchName)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return dimStyle.Render(text)
}

// ColorHeader renders a section heading
func ColorHeader(text string) string {
	return headerStyle.Render(text)
}
