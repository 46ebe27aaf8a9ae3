package ports

// Logger is the out-of-band diagnostics logger. Run output never goes
// through it; that is the Renderer's job.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
