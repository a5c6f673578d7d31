package styles

import "github.com/charmbracelet/lipgloss"

// Theme contains the composed styles.
var Theme = struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	BadgeSuccess lipgloss.Style
	BadgeError   lipgloss.Style
	BadgeWarning lipgloss.Style
	BadgePending lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary),

	Muted: lipgloss.NewStyle().
		Foreground(ColorTextMuted),

	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText),

	Success: lipgloss.NewStyle().
		Foreground(ColorSuccess),

	Error: lipgloss.NewStyle().
		Foreground(ColorError),

	Warning: lipgloss.NewStyle().
		Foreground(ColorWarning),

	Info: lipgloss.NewStyle().
		Foreground(ColorInfo),

	BadgeSuccess: lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(ColorSuccess).
		Padding(0, 1),

	BadgeError: lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(ColorError).
		Padding(0, 1),

	BadgeWarning: lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(ColorWarning).
		Padding(0, 1),

	BadgePending: lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(ColorTextMuted).
		Padding(0, 1),

	TableHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1),

	TableCell: lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1),

	TableBorder: lipgloss.NewStyle().
		Foreground(ColorBorder),
}

// RenderBadge returns a styled badge for a record state or container status.
func RenderBadge(status string) string {
	switch status {
	case "running", "active", "ok":
		return Theme.BadgeSuccess.Render(status)
	case "exited", "dead", "not found", "destroyed":
		return Theme.BadgeError.Render(status)
	case "restarting", "paused", "degraded":
		return Theme.BadgeWarning.Render(status)
	default:
		return Theme.BadgePending.Render(status)
	}
}

// RenderError returns an error message.
func RenderError(msg string) string {
	return Theme.Error.Render("✗ " + msg)
}

// RenderSuccess returns a success message.
func RenderSuccess(msg string) string {
	return Theme.Success.Render("✓ " + msg)
}

// RenderInfo returns an informational message.
func RenderInfo(msg string) string {
	return Theme.Info.Render("i " + msg)
}

// RenderWarning returns a warning message.
func RenderWarning(msg string) string {
	return Theme.Warning.Render("! " + msg)
}
