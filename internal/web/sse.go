package web

import (
	"net/http"

	"github.com/r3labs/sse/v2"
)

// updateStream is the SSE stream name carrying change notifications. Every
// write to either collection publishes an "update" event so other open views
// reload their lists; the event carries no payload beyond the collection key.
const updateStream = "updates"

// newEventServer creates the SSE server backing the /events endpoint
func newEventServer() *sse.Server {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(updateStream)
	return server
}

// serveEvents serves an SSE subscription, defaulting to the update stream
// when the client did not name one
func (h *Handler) serveEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("stream") == "" {
		query.Set("stream", updateStream)
		r.URL.RawQuery = query.Encode()
	}
	h.events.ServeHTTP(w, r)
}

// NotifyUpdate publishes a change notification to all connected views.
// Register it as an update callback on both managers.
func (h *Handler) NotifyUpdate() {
	h.events.Publish(updateStream, &sse.Event{
		Event: []byte("update"),
		Data:  []byte("update"),
	})
}

// Shutdown closes all SSE connections
func (h *Handler) Shutdown() {
	h.events.Close()
}
