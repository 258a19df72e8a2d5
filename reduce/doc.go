// Package reduce provides higher-order reducers for Bubble Tea programs.
//
// Tea Extras decorates the Elm-style update loop — state in, message in,
// state and command out — with interceptors for designated message cases,
// while keeping the base reducer untouched and every scheduling concern
// delegated to the host runtime.
//
// # What is an interceptor?
//
// An interceptor is a wrapper around an Update function that:
//   - runs the base reducer first,
//   - checks the incoming message against exactly one Case,
//   - on a match, applies its policy (set a field, log, schedule work),
//   - merges any extra commands with the base command via tea.Batch.
//
// For every message its Case does not match, a wrapped reducer behaves
// exactly like its base: same state, same command.
//
// # Why wrap instead of switch?
//
// Asynchronous results and their failures tend to smear identical
// boilerplate across update functions. Wrapping keeps the base reducer
// about its own messages and moves the recurring cases — "assign this
// error somewhere", "set this fetched value", "kick off this request" —
// into declarative call sites.
//
// This package exports:
//   - Update and Case, the reducer and case-locator shapes
//   - OnFailure with its SetFailure / LogFailure / SetAndLogFailure policies
//   - OnReceive / OnReceived / OnReceivedFailure for value-bearing cases
//   - OnTrigger for scheduling receive effects from a trigger case
//   - Receivable, the single-root-case convention for async outcomes
//
// Example:
//
//	update := reduce.OnReceived(base, func(m *Model, q Quote) {
//	    m.Quote = q
//	})
//	update = reduce.OnFailure(update, caseQuoteError,
//	    reduce.SetFailure(func(m *Model, err error) { m.Err = err }))
package reduce
