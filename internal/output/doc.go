// Package output handles command output formatting for the microlog CLI.
//
// The Printer supports two modes: human-readable terminal output with
// lipgloss styling, and structured JSON for scripting. Errors carry exit
// codes through ExitError so the top-level command loop can translate
// failures into process exit status consistently.
package output
