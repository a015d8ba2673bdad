// Package runtime provides the execution context for easygit commands.
//
// It encapsulates shared dependencies needed by actions, such as the git
// runner, settings, logger, and the repository configuration, which is read
// at most once per invocation.
package runtime
