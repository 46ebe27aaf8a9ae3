package domain

// HostStats is the per-host outcome summary consumed by the recap table.
// It is a read-only snapshot taken by the engine at run end.
type HostStats struct {
	Host        string
	Ok          int
	Changed     int
	Unreachable int
	Failed      int
	Skipped     int
	Rescued     int
	Ignored     int
}

// Degraded reports whether the host had any failure or was unreachable.
func (s HostStats) Degraded() bool {
	return s.Failed != 0 || s.Unreachable != 0
}
