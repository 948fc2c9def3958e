// Package submission hands a finished demand to the outside world. The
// Coordinator builds the payload (non-empty fields only), guards against
// overlapping calls, invokes a Submitter and reports the result through a
// Notifier. A successful submission additionally triggers the Navigator once.
//
// Neither a semantic failure nor a transport error is fatal: both leave the
// caller's wizard state untouched so the user can submit again.
package submission
