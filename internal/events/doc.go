// Package events provides the in-process event notification core.
//
// Domain services construct one of the concrete events defined here (for example
// ProjectCreated or TaskAssigned) once a business action has completed, and hand
// it to a Dispatcher. The Dispatcher delivers the event synchronously, on the
// calling goroutine, to every listener registered for the event's kind in
// descending priority order.
//
// The primary components are:
//   - Event: a sealed, immutable value with a kind, a payload and a timestamp
//   - Listener: the single handling operation invoked for each delivered event
//   - Dispatcher: the registry of prioritized listeners per event kind
//
// A failing listener (returned error or panic) is logged and skipped; it never
// prevents later listeners from running and never reaches the emitter.
package events
