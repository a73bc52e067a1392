package tui

import (
	"github.com/lixenwraith/dockspace/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

func lineChars(line LineType) [6]rune {
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	return boxChars[line]
}

// Box draws border around region edge, keeping the existing background when bg is zero
func (r Region) Box(line LineType, fg, bg terminal.RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	chars := lineChars(line)

	r.Cell(0, 0, chars[boxTL], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, 0, chars[boxTR], fg, bg, terminal.AttrNone)
	r.Cell(0, r.H-1, chars[boxBL], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, r.H-1, chars[boxBR], fg, bg, terminal.AttrNone)

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], fg, bg, terminal.AttrNone)
		r.Cell(x, r.H-1, chars[boxH], fg, bg, terminal.AttrNone)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], fg, bg, terminal.AttrNone)
		r.Cell(r.W-1, y, chars[boxV], fg, bg, terminal.AttrNone)
	}
}

// BoxFilled fills the region then draws its border
func (r Region) BoxFilled(line LineType, fg, bg terminal.RGB) {
	r.Fill(bg)
	r.Box(line, fg, bg)
}

// HLine draws horizontal line across region width at row y
func (r Region) HLine(y int, line LineType, fg, bg terminal.RGB) {
	if y < 0 || y >= r.H {
		return
	}
	ch := lineChars(line)[boxH]
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ch, fg, bg, terminal.AttrNone)
	}
}

// VLine draws vertical line across region height at column x
func (r Region) VLine(x int, line LineType, fg, bg terminal.RGB) {
	if x < 0 || x >= r.W {
		return
	}
	ch := lineChars(line)[boxV]
	for y := 0; y < r.H; y++ {
		r.Cell(x, y, ch, fg, bg, terminal.AttrNone)
	}
}
