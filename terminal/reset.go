package terminal

import (
	"io"
	"os"
)

var emergencySequences = []string{
	"\x1b[?1003l", // Mouse motion off
	"\x1b[?1002l", // Mouse drag off
	"\x1b[?1000l", // Mouse click off
	"\x1b[?1006l", // SGR mouse off
	"\x1b[?25h",   // Cursor show
	"\x1b[?1049l", // Alternate screen exit
	"\x1b[0m",     // Attributes reset
	"\x1b[?7h",    // Auto-wrap on
}

// EmergencyReset writes escape sequences restoring a usable terminal
// Used from panic handlers where the Terminal itself may be unusable
func EmergencyReset(w io.Writer) {
	for _, seq := range emergencySequences {
		io.WriteString(w, seq)
	}
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
