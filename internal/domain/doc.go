// Package domain defines the core business entities of the flashcard service:
// users, decks, cards, the per-user interval table and answer summary, and
// pending email verifications. It also holds the shared validation errors and
// the single ownership gate used by every card and deck operation.
package domain
