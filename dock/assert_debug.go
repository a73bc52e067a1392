//go:build dockdebug

package dock

import "fmt"

// assertf panics in dockdebug builds; structural misuse is a caller bug
func assertf(format string, args ...any) {
	panic("dock: " + fmt.Sprintf(format, args...))
}
