package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is a map-backed SlotStore for tests.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Read(_ context.Context, slot string) ([]byte, bool) {
	value, ok := m.data[slot]
	return value, ok
}

func (m *memStore) Write(_ context.Context, slot string, value []byte) {
	m.data[slot] = value
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestReadJSONAbsentSlot(t *testing.T) {
	t.Parallel()

	var out payload
	ok := ReadJSON(context.Background(), newMemStore(), SlotQuests, &out)

	assert.False(t, ok, "absent slot should report absent")
}

func TestWriteJSONThenReadJSON(t *testing.T) {
	t.Parallel()

	slots := newMemStore()
	ctx := context.Background()

	WriteJSON(ctx, slots, SlotQuests, payload{Name: "waves", Count: 3})

	var out payload
	ok := ReadJSON(ctx, slots, SlotQuests, &out)

	require.True(t, ok)
	assert.Equal(t, "waves", out.Name)
	assert.Equal(t, 3, out.Count)
}

func TestReadJSONCorruptDocument(t *testing.T) {
	t.Parallel()

	slots := newMemStore()
	ctx := context.Background()
	slots.Write(ctx, SlotCharacter, []byte("{not json"))

	var out payload
	ok := ReadJSON(ctx, slots, SlotCharacter, &out)

	assert.False(t, ok, "corrupt document should be treated as absent")
}

func TestWriteJSONUnencodableValue(t *testing.T) {
	t.Parallel()

	slots := newMemStore()
	ctx := context.Background()

	WriteJSON(ctx, slots, SlotNotes, []byte("old"))
	WriteJSON(ctx, slots, SlotNotes, make(chan int))

	// The previous document stays in place when encoding fails.
	raw, ok := slots.Read(ctx, SlotNotes)
	require.True(t, ok)
	assert.JSONEq(t, `"b2xk"`, string(raw))
}
