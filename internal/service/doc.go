// Package service contains the application use cases of the flashcard
// service: deck and card management, the user's profile, interval table and
// answer summary, and the signup, verification and login flow.
//
// Services receive their stores and collaborators through constructor
// injection and depend only on the interfaces in internal/store. Every card
// and deck operation loads the record first, reports NotFound when it is
// absent and then passes it through domain.AssertOwnsOrForbidden. Operations
// that write several rows run inside one store.TxRunner call.
//
// Errors that cross the package boundary are *ServiceError values wrapping
// the store or domain sentinel that caused them, so callers classify them
// with errors.Is.
package service
