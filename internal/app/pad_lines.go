package app

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// fitToWidth pads or cuts an ANSI-styled line to exactly width cells.
func fitToWidth(line string, width int) string {
	if width <= 0 {
		return ""
	}
	lineWidth := xansi.StringWidth(line)
	if lineWidth > width {
		return xansi.Truncate(line, width, "")
	}
	if lineWidth < width {
		line += strings.Repeat(" ", width-lineWidth)
	}
	return line
}

// wrapPlain hard-wraps unstyled text to width cells, breaking on spaces
// where possible.
func wrapPlain(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(paragraph) {
			for runewidth.StringWidth(word) > width {
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					break
				}
				if line != "" {
					out = append(out, line)
					line = ""
				}
				out = append(out, head)
				word = word[len(head):]
			}
			switch {
			case word == "":
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		out = append(out, line)
	}
	return out
}

// centerPlain centers unstyled text within width cells.
func centerPlain(text string, width int) string {
	text = runewidth.Truncate(text, width, "")
	pad := width - runewidth.StringWidth(text)
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
