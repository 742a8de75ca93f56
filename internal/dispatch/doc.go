// Package dispatch drives dispatch cycles. A Dispatcher consumes view events
// from a single channel, runs the prompt sequence for the chosen template,
// invokes the project CLI, classifies the result, notifies the user through
// the Host and always ends the cycle by disposing the view and returning to
// the template list.
package dispatch
