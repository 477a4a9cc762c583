package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// EventsHandler godoc
// @Summary Notification stream
// @Description Server-sent events named after the event kind. Failures are sent as "error" events.
// @Tags events
// @Produce text/event-stream
// @Success 200 {object} notify.Event
// @Router /events [get]
func EventsHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok || hub == nil {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	events, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(e)
			if err != nil {
				log.Printf("failed to encode event: %v", err)
				continue
			}
			name := string(e.Kind)
			if e.Failed() {
				name = "error"
			}
			if _, err := fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", e.ID, name, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
