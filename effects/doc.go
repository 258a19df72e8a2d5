// Package effects provides effect constructors for Bubble Tea programs.
//
// An effect here is a plain tea.Cmd: a description of asynchronous work the
// host runtime schedules, runs, and cancels. This package constructs two
// kinds of them.
//
// # Receive
//
// Receive runs an operation of shape func(context.Context) (V, error),
// wraps its outcome in a results.Result, and embeds it into a target
// message. ReceiveMapped additionally transforms the success value first.
// Both honor context cancellation: a canceled context always embeds the
// failure side.
//
// # Fail
//
// Fail raises a developer assertion plus an optional log line. It marks
// execution paths that should be unreachable — the failure case of a
// request the model never issued, for instance — without tearing the
// program down in production.
//
// No goroutines, channels, or locks are introduced here; commands run
// under the host's own concurrency model and merge via tea.Batch.
package effects
