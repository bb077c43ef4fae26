// Package api is the HTTP edge of the flashcard service. Handlers decode and
// validate JSON requests, take the caller's user ID from the request context
// and hand off to the services in internal/service. Service errors are turned
// into status codes and client-safe messages by MapErrorToStatusCode and
// GetSafeErrorMessage; raw error text never reaches a response body.
package api
