// Package srs implements the oblivion-curve scheduler: the level transition
// applied for one answer, the calendar-aware length of a user-entered
// interval and the timestamp of the next review.
//
// Everything here is pure apart from the Clock, which is injected so that
// callers and tests control "now" and its time zone.
package srs
