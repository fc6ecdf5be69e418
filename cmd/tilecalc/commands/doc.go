// Package commands defines the tilecalc CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - count      Count the tilings of a 2xN floor (single method or all)
//   - enumerate  Render every tiling of a 2xN floor as ASCII diagrams
//   - verify     Cross-check the three counting methods against each other
//   - table      Print the count sequence a(0)..a(N)
//   - analyze    Derive and evaluate the closed form of the count sequence
//   - lego       Solve the classic 2x10 brick floor question
//   - explore    Browse tilings interactively in a full-screen TUI
//   - repl       Start an interactive calculator session
//
// # Implementation
//
// The root command resolves the configuration (defaults, then TILECALC_*
// environment variables, then flags), validates it, sets the logging level
// and color theme, and shares a counter factory with every subcommand.
// Subcommands bound their work with the configured timeout and translate
// failures into the application exit codes.
package commands
