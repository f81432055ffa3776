package tui

// renderAlertOverlay draws the blocking alert raised by a page. It replaces
// the page until the user acknowledges it.
func renderAlertOverlay(message string) string {
	content := errorStyle.Render("Alert") + "\n\n" + message + "\n\n" + helpStyle.Render("enter / esc: OK")
	return appStyle.Render(overlayBoxStyle.Render(content))
}
