// Package cli defines the Cobra command tree for the baltemplates CLI. Each
// file in this package registers one top-level command with the root command.
// Command implementations delegate to internal packages for the dispatch
// cycle and only handle flag parsing, I/O formatting, and terminal setup.
package cli
