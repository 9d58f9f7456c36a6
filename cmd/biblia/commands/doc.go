// Package commands defines the biblia CLI and wires dependencies for subcommands.
//
// Commands
//
//   - verse <reference>       Fetch a single verse (e.g. 3:16)
//   - chapter <number>        Fetch a full chapter as a numbered list
//   - range <start> <end>     Fetch the verses between two references
//   - search <term...>        Search a book for a word or phrase
//   - books                   List the known books
//   - config show|set         Inspect or change stored defaults
//   - shell                   Interactive session over the lookup screens
//
// The legacy screen names (index, bible/verse, bible/chapter, bible/range,
// bible/search) are accepted as aliases of the lookup commands.
//
// # Implementation
//
// The root command resolves configuration and builds the dependency graph
// (preferences store, HTTP client, API client, screens) before any lookup
// subcommand runs. Validation failures and lookup failures are both reported
// as a single localized line on stderr and a non-zero exit status.
package commands
