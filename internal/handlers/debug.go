package handlers

import (
	"context"
	"net/http"
	"time"
)

type debugResponse struct {
	Origin    string `json:"origin"`
	Protocol  string `json:"protocol"`
	Host      string `json:"host"`
	XFProto   string `json:"xf_proto"`
	XFHost    string `json:"xf_host"`
	CFVisitor string `json:"cf_visitor"`
}

// Debug echoes what the server sees of the connection, for checking proxy
// and TLS-termination setups.
func Debug(w http.ResponseWriter, r *http.Request) {
	protocol := "http:"
	if r.TLS != nil {
		protocol = "https:"
	}
	writeJSON(w, http.StatusOK, debugResponse{
		Origin:    protocol + "//" + r.Host,
		Protocol:  protocol,
		Host:      r.Host,
		XFProto:   r.Header.Get("X-Forwarded-Proto"),
		XFHost:    r.Header.Get("X-Forwarded-Host"),
		CFVisitor: r.Header.Get("CF-Visitor"),
	})
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports 503 when the store does not answer within two seconds.
func Health(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}
}
