// Package listeners contains the event listeners that react to domain events
// and the Register function that attaches them to a dispatcher.
//
// Priorities: the audit listener runs first (100) so the activity trail is
// written before any side effect; notification and logging listeners run at
// the default priority (0).
package listeners
