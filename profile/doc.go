// Package profile provides optional runtime profiling for the vetvar
// command.
//
// Profiling integrates [github.com/pkg/profile] and must be enabled at
// build time with the pprof build tag:
//
//	go build -tags pprof .
//
// When built without the tag (the default), all operations are no-ops with
// zero runtime overhead.
//
// The following modes are supported when built with the tag: allocs,
// block, clock, cpu, goroutine, heap, mem, mutex, thread, and trace. Use
// [Modes] to retrieve the list programmatically.
//
// A profiler is configured with functional options over [Config] and
// started with [Config.Start]:
//
//	var cfg profile.Config = func() (string, string, bool) {
//	    return "", "", false
//	}
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath("/tmp/profiles")(cfg)
//	defer cfg.Start().Stop()
//
// Profile files are written to the configured directory with names
// matching the mode (e.g. cpu.pprof). The vetvar command exposes this
// through the --pprof-mode and --pprof-dir flags, writing to
// $XDG_CACHE_HOME/vetvar/pprof by default.
//
// Analyze the output with the standard tooling:
//
//	go tool pprof ./vetvar /tmp/profiles/cpu.pprof
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
