package raster

import "fmt"

// panicFmt panics with a formatted message. Used for conditions that
// indicate a bug in the caller (the GP0 command processor), never for
// per-primitive outcomes a malformed drawing command can trigger during
// normal operation — those are silent early returns.
func panicFmt(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}
