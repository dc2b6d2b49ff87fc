package terminal

import (
	"io"
	"os"
)

// Raw escape sequences for crash recovery, bypassing any screen abstraction
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset writes raw restore sequences directly to the writer.
// Used from panic handlers where the tcell screen may be in an unknown
// state and Fini cannot be trusted to run.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
