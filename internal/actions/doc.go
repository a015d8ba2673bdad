// Package actions provides the business logic behind each CLI command.
//
// Each action corresponds to an easygit command (stage, commit, push, etc.):
// it builds the git argument vector, runs it through the runtime's runner,
// and reports the result.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Runner, Settings, Splog and the repository Configuration
//   - Argument vectors are built by pure *Args functions so they can be tested without git
//   - Git failures are printed highlighted here and returned so the CLI can exit with git's status
package actions
