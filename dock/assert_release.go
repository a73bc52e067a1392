//go:build !dockdebug

package dock

import "log"

// assertf records a structural misuse; the calling operation reports failure
func assertf(format string, args ...any) {
	log.Printf("[dock] invariant: "+format, args...)
}
