package chi

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/webhook-relay/relay"
)

// DispatchIDHeader carries the dispatch ID back to the inbound caller
const DispatchIDHeader = "X-Relay-Dispatch-Id"

// postRelay handles POST <mount>/*
func postRelay(service relay.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		result, err := service.Dispatch(r.Context(), chi.URLParam(r, "*"), body)
		if result.DispatchID != "" {
			w.Header().Set(DispatchIDHeader, result.DispatchID)
			httplog.LogEntrySetField(r.Context(), "dispatch_id", result.DispatchID)
		}

		status := result.Status
		if status == 0 {
			status = relay.StatusCode(err)
		}
		if err != nil {
			// Server-side errors may carry the target URL, which is a secret
			msg := err.Error()
			if status >= http.StatusInternalServerError {
				msg = http.StatusText(status)
			}
			http.Error(w, msg, status)
			return
		}

		w.WriteHeader(status)
	})
}
