package tui

import "github.com/lixenwraith/dockspace/terminal"

// Theme defines semantic colors for dock components
type Theme struct {
	Bg       terminal.RGB
	Fg       terminal.RGB
	FocusBg  terminal.RGB
	Border   terminal.RGB
	HintFg   terminal.RGB
	StatusFg terminal.RGB

	TabActiveFg   terminal.RGB
	TabActiveBg   terminal.RGB
	TabInactiveFg terminal.RGB
	TabInactiveBg terminal.RGB
	TabDraggedFg  terminal.RGB

	Gutter       terminal.RGB
	GutterActive terminal.RGB

	DropTarget      terminal.RGB
	DropTargetHover terminal.RGB
	DropPreview     terminal.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Bg:              terminal.RGB{R: 20, G: 20, B: 30},
	Fg:              terminal.RGB{R: 200, G: 200, B: 200},
	FocusBg:         terminal.RGB{R: 30, G: 35, B: 45},
	Border:          terminal.RGB{R: 60, G: 80, B: 100},
	HintFg:          terminal.RGB{R: 100, G: 180, B: 200},
	StatusFg:        terminal.RGB{R: 140, G: 140, B: 140},
	TabActiveFg:     terminal.RGB{R: 255, G: 255, B: 255},
	TabActiveBg:     terminal.RGB{R: 40, G: 60, B: 90},
	TabInactiveFg:   terminal.RGB{R: 140, G: 140, B: 140},
	TabInactiveBg:   terminal.RGB{R: 28, G: 28, B: 40},
	TabDraggedFg:    terminal.RGB{R: 255, G: 180, B: 100},
	Gutter:          terminal.RGB{R: 60, G: 80, B: 100},
	GutterActive:    terminal.RGB{R: 100, G: 200, B: 220},
	DropTarget:      terminal.RGB{R: 80, G: 110, B: 160},
	DropTargetHover: terminal.RGB{R: 100, G: 200, B: 220},
	DropPreview:     terminal.RGB{R: 40, G: 70, B: 110},
}

// HoverBg returns the background used for a hovered element over base
func (t Theme) HoverBg(base terminal.RGB) terminal.RGB {
	return Blend(base, t.DropTargetHover, 0.35)
}
