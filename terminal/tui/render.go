package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/dockspace/terminal"
)

// Text renders text at position, truncates at region edge
// Wide runes occupy two columns; the trailing column is left untouched
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := 0
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+col+w > r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, ch, fg, bg, attr)
		}
		col += w
	}
	return col
}

// TextStyled renders text using Style struct
func (r Region) TextStyled(x, y int, s string, style Style) int {
	return r.Text(x, y, s, style.Fg, style.Bg, style.Attr)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	x := (r.W - RuneLen(s)) / 2
	r.Text(x, y, s, fg, bg, attr)
}

// TextBlock renders newline-separated text starting at (x, y), returns rows used
func (r Region) TextBlock(x, y int, text string, fg, bg terminal.RGB, attr terminal.Attr) int {
	rows := 0
	for _, line := range strings.Split(text, "\n") {
		if y+rows >= r.H {
			break
		}
		r.Text(x, y+rows, line, fg, bg, attr)
		rows++
	}
	return rows
}
