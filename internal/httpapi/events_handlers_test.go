package httpapi

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack-engine/internal/events"
)

func readEvent(t *testing.T, sc *bufio.Scanner) events.Event {
	t.Helper()
	for sc.Scan() {
		line := sc.Text()
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			var e events.Event
			require.NoError(t, json.Unmarshal([]byte(data), &e))
			return e
		}
	}
	t.Fatalf("stream ended: %v", sc.Err())
	return events.Event{}
}

func TestServeSSE_FiltersByUser(t *testing.T) {
	hub := events.NewHub()
	srv := httptest.NewServer(http.HandlerFunc(EventsHandler{Hub: hub}.ServeSSE))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?user=1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	sc := bufio.NewScanner(resp.Body)
	assert.Equal(t, events.TypePing, readEvent(t, sc).Type)
	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 5*time.Millisecond)

	hub.Publish(events.MakeUserEvent("", 2, events.TypeJobCreated, 1, map[string]any{"id": 7}))
	hub.Publish(events.MakeUserEvent("", 1, events.TypeJobDeleted, 1, map[string]any{"id": 8}))
	hub.Publish(events.MakeEvent("", events.TypeConfigReloaded, 1, nil))

	got := readEvent(t, sc)
	assert.Equal(t, events.TypeJobDeleted, got.Type)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, events.TypeConfigReloaded, readEvent(t, sc).Type)
}

func TestServeSSE_BadUser(t *testing.T) {
	rec := httptest.NewRecorder()
	EventsHandler{Hub: events.NewHub()}.ServeSSE(rec, httptest.NewRequest(http.MethodGet, "/events?user=x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForUser(t *testing.T) {
	assert.True(t, forUser(events.MakeEvent("", events.TypePing, 1, nil), 3))
	assert.True(t, forUser(events.MakeUserEvent("", 3, events.TypeJobCreated, 1, nil), 3))
	assert.False(t, forUser(events.MakeUserEvent("", 4, events.TypeJobCreated, 1, nil), 3))
	assert.False(t, forUser("not json", 3))
}

func TestClientLimiter(t *testing.T) {
	cl := NewClientLimiter(0, 0)
	for i := 0; i < 100; i++ {
		require.True(t, cl.Allow("a"))
	}

	cl.Reset(0.001, 2)
	assert.True(t, cl.Allow("a"))
	assert.True(t, cl.Allow("a"))
	assert.False(t, cl.Allow("a"))
	assert.True(t, cl.Allow("b"))

	cl.Reset(0.001, 1)
	assert.True(t, cl.Allow("a"))
}
