// Package cli implements the dockhand command tree.
//
// It wires the client library to the shell: cobra commands, the YAML config
// file, JSONC container spec files, and terminal output formatting. Commands
// talk to the daemon through the EngineClient seam so tests can script the
// engine without a daemon.
package cli
