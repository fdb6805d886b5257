package driver

// Status is the phase of one unit within Run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusScanning
	StatusDone
	StatusCached
	// StatusFailed means the scan finished but some rules returned errors.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusScanning:
		return "scanning"
	case StatusDone:
		return "done"
	case StatusCached:
		return "cached"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Finished reports whether no further events follow for the unit.
func (s Status) Finished() bool { return s >= StatusDone }

// ProgressEvent reports a status change of one unit.
type ProgressEvent struct {
	Path        string
	Status      Status
	Diagnostics int
}

// ProgressFunc receives events from every worker goroutine and must be safe
// for concurrent use.
type ProgressFunc func(ProgressEvent)

func (f ProgressFunc) emit(ev ProgressEvent) {
	if f != nil {
		f(ev)
	}
}

func finalEvent(res *Result) ProgressEvent {
	ev := ProgressEvent{Path: res.Path, Status: StatusDone}
	if res.Bag != nil {
		ev.Diagnostics = res.Bag.Len()
	}
	switch {
	case res.Cached:
		ev.Status = StatusCached
	case len(res.Errors) > 0:
		ev.Status = StatusFailed
	}
	return ev
}
