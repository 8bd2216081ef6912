package consoles

// Console is the diagnostic stream. Implementations must be safe for concurrent use.
type Console interface {
	Printf(format string, a ...any)

	// Finish flushes anything pending. Printf must not be called afterwards.
	Finish()
}
