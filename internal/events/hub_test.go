package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishSubscribe(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()
	assert.Equal(t, 2, h.Len())

	h.Publish("hello")
	assert.Equal(t, "hello", <-a)
	assert.Equal(t, "hello", <-b)

	h.Unsubscribe(a)
	h.Unsubscribe(a) // second call is a no-op
	assert.Equal(t, 1, h.Len())

	_, open := <-a
	assert.False(t, open)
}

func TestHub_DropsWhenFull(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	for i := 0; i < 25; i++ {
		h.Publish("x")
	}
	assert.Len(t, ch, 10)
}

func TestMakeUserEvent(t *testing.T) {
	raw := MakeUserEvent("req-1", 7, TypeSkillsUpdated, 1, map[string]any{"count": 2})

	var e Event
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, TypeSkillsUpdated, e.Type)
	assert.Equal(t, int64(7), e.UserID)
	assert.Equal(t, "req-1", e.RequestID)
	assert.JSONEq(t, `{"count":2}`, string(e.Data))

	require.NoError(t, json.Unmarshal([]byte(MakeEvent("", TypePing, 1, nil)), &e))
	assert.Equal(t, TypePing, e.Type)
}
