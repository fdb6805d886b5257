// Package trace is the tool's own event log: spans and point events that
// show what the driver is doing while it scans files.
//
// # Usage
//
//	t, err := trace.New(trace.Config{Level: trace.LevelDetail, OutputPath: "-"})
//	ctx = trace.WithTracer(ctx, t)
//
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "scan:Foo.cfc", parentID)
//	defer span.End("")
//
// # Levels and scopes
//
// Events carry a Scope; the tracer Level decides which scopes are written:
//
//   - LevelPhase: ScopeRun (one span per run)
//   - LevelDetail: plus ScopeFile (one span per scanned file)
//   - LevelDebug: plus ScopeNode (scan-context derivations, rule calls)
//
// Tracers are goroutine-safe; the driver shares one across file workers.
package trace
