// Package cli provides the interactive dashboard command-line client.
//
// It wires configuration, session storage, the backend clients and the
// dashboard service behind a small REPL. On start the dashboard is shown
// directly when a valid session is stored; otherwise the user is asked to
// log in.
//
// Commands:
//   - login / logout
//   - status: stored session and its expiry
//   - show: fetch the profile and print the summary
//   - chart: export the top-projects and audit charts as SVG
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
