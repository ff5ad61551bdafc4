package sandhi

import "github.com/rs/zerolog"

// log is the package logger; it is a no-op until a caller wires a sink in
// via SetLogger, matching the rest of this module's zerolog convention.
var log = zerolog.Nop()

// SetLogger installs l as the sandhi package's logger.
func SetLogger(l zerolog.Logger) {
	log = l
}
