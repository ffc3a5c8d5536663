// Package service implements the application engines: character
// progression, quest lifecycle, flashcard review, notes and timer
// history, plus the state facade that presentation layers talk to.
// Every engine reads, modifies and writes its slot through the store
// adapter and returns the updated entity.
package service
