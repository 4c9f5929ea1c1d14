// Package planner handles the planning phase of legacy ABI reconciliation.
//
// The planner inspects a variant's output tree and produces a deterministic
// list of operations without touching the filesystem. The engine executes
// the plan; a dry run simply prints it.
//
// Key responsibilities:
//   - Decide whether reconciliation is skipped (strategy none, no predecessor)
//   - Select native libraries from the predecessor ABI directory
//   - Keep or overwrite existing legacy libraries according to the strategy
//   - Schedule removal of the predecessor directory last
package planner
