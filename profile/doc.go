// Package profile provides optional runtime profiling for the vinv
// application.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag.
// When built without the tag (the default), all operations are no-ops with
// zero runtime overhead.
//
// Supported modes when built with the tag: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, trace. Use [Modes] to retrieve the
// list programmatically.
//
//	cfg := profile.WithMode("cpu")(profile.Config(func() (string, string, bool) {
//	    return "", "", false
//	}))
//	defer cfg.Start().Stop()
//
// Profile files are written to the configured directory with names matching
// the profiling mode (e.g., cpu.pprof, mem.pprof), analyzable with
// go tool pprof.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
