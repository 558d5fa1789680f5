package tui

import (
	"strings"

	"github.com/MKhiriev/cheddup/internal/app"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage draws a view card: title, divider, indented body, divider and
// the page-specific hot keys followed by the global ones.
func renderPage(title, data, pageKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(pageKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(pageKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(hotKeys(keys.switchTab, keys.toUpload, keys.toChat, keys.about, keys.quit)))

	return b.String()
}

func cardTitle(card app.Card) string {
	return card.Badge + " · " + card.Title
}

func renderButton(label string, disabled bool) string {
	if disabled {
		return helpStyle.Render("[" + label + "]")
	}
	return buttonStyle.Render("[" + label + "]")
}

func renderStatus(text string, success bool) string {
	if success {
		return successStyle.Render(text)
	}
	return errorStyle.Render(text)
}
