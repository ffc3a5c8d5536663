package store

import "context"

// Slot keys for persisted state. The names match the original Scholar's
// Chronicle localStorage keys so exported slots stay interchangeable.
const (
	SlotCharacter              = "scholar-character"
	SlotQuests                 = "scholar-quests"
	SlotFlashcards             = "scholar-flashcards"
	SlotNotes                  = "scholar-notes"
	SlotTimerSessions          = "scholar-timer-sessions"
	SlotAuth                   = "scholar-auth"
	SlotErrorLog               = "scholar-error-log"
	SlotTheme                  = "scholar-theme"
	SlotPlannedQuests          = "scholar-planned-quests"
	SlotPlannedQuestsCompleted = "scholar-planned-quests-completed"
)

// SlotStore is the durable local key-value store behind every engine.
//
// Both operations are best-effort: Read reports absent (ok == false) on
// any storage or decoding fault, and Write silently drops the value if it
// cannot be persisted. Faults are logged by implementations, never
// returned, so callers must tolerate loss.
type SlotStore interface {
	// Read returns the raw JSON document stored under slot, or ok == false
	// if the slot is empty or unreadable.
	Read(ctx context.Context, slot string) (value []byte, ok bool)

	// Write replaces the document stored under slot.
	Write(ctx context.Context, slot string, value []byte)
}
