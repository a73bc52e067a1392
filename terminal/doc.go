// Package terminal provides the cell model, input events and a tcell-backed screen.
//
// Features:
//   - 24-bit RGB cells with a small attribute bitmask
//   - Key, modifier and mouse events decoupled from the backend
//   - Config-friendly key names (KeyByName / KeyName)
//   - Frame flush of a row-major cell buffer with cell-level diffing
//
// The Terminal interface is what the dock and tui packages draw through; NewTcell
// adapts any tcell.Screen, including tcell.NewSimulationScreen for tests.
package terminal
