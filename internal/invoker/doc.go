// Package invoker runs the external project CLI. A Request names the working
// directory and the arguments; Run captures stdout, stderr and the exit code
// of a single attempt, and Start does the same on a goroutine so the caller's
// event loop keeps running while the tool works.
package invoker
