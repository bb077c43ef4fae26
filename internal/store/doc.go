// Package store defines the persistence interfaces for users, decks, cards,
// interval settings, answer summaries and pending email verifications.
//
// Every store exposes WithTx so services can compose several writes into one
// unit of work with RunInTransaction. Implementations live in
// internal/platform/postgres.
package store
