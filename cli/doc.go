// Package cli contains the command line interface for vetvar.
//
// # Usage
//
//	# Import one variable, or fail
//	vetvar get PORT -f app.conf -m '\d+'
//
//	# Import whichever of the named variables exist
//	vetvar values HOST PORT -f app.conf -o json
//
//	# Import variables that must all be present
//	vetvar require HOST PORT -f app.conf
//
//	# Emit shell export statements, merging PATH-like lists
//	eval "$(vetvar export PATH EDITOR -f env.conf --prepend PATH)"
//
//	# Browse the file interactively
//	vetvar pick -f app.conf
//
// Values are printed on stdout. Warnings and diagnostics are logged on
// stderr, so command output can be captured or evaluated directly.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
