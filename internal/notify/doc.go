// Package notify delivers user notifications in the background.
//
// Listeners build a Notification and Enqueue it on a bounded Queue, so event
// dispatch never waits on delivery. A WorkerPool drains the queue and hands
// each notification to a Notifier. Delivery failures and panics are logged
// and reported to an optional error handler; they never stop a worker.
package notify
