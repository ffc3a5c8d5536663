package store

import (
	"context"
	"encoding/json"
	"log/slog"
)

// ReadJSON reads and decodes the document under slot into v.
// A missing slot or an undecodable document both report absent; a corrupt
// document is logged and treated the same as a missing one, matching the
// adapter's never-fail contract.
func ReadJSON(ctx context.Context, s SlotStore, slot string, v any) bool {
	raw, ok := s.Read(ctx, slot)
	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, v); err != nil {
		slog.Warn("discarding undecodable slot document",
			slog.String("slot", slot),
			slog.String("error", err.Error()))
		return false
	}

	return true
}

// WriteJSON encodes v and writes it under slot. Encoding failures are
// logged and dropped; the previous document stays in place.
func WriteJSON(ctx context.Context, s SlotStore, slot string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to encode slot document",
			slog.String("slot", slot),
			slog.String("error", err.Error()))
		return
	}

	s.Write(ctx, slot, raw)
}
