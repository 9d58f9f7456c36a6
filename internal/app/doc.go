// Package app wires application dependencies for the CLI.
//
// It resolves Config (flags, then environment, then the preferences file,
// then defaults), builds the logger, HTTP client, API client, lookup service and screens,
// and exposes them via the Wire struct for commands to use.
package app
