package tui

import (
	"fmt"
	"strings"
)

// HeaderModel renders the top bar: title, version and list base.
type HeaderModel struct {
	version string
	width   int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header for a list of the given base and length.
func (h HeaderModel) View(base, length int) string {
	titleText := "numlist editor"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	info := fmt.Sprintf("base %d | %d digit(s)", base, length)

	gap := h.width - len(titleText) - len(info)
	return titleStyle.Render(titleText) + spaces(gap) + versionStyle.Render(info)
}

func spaces(n int) string {
	if n < 1 {
		return " "
	}
	return strings.Repeat(" ", n)
}
