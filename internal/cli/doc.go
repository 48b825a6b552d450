// Package cli defines the Cobra command tree for the pyboot CLI. The bare root
// command runs the bootstrap sequence; each other file registers one
// subcommand. Commands only resolve the project, format output and map
// results to exit status; the work itself lives in the internal packages.
package cli
