package api

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"friendsite/internal/common"
)

const maxPayloadBytes = 1 << 20

// responseEnvelope is the HTTP shape of a CommandResponse. Data carries the
// already-encoded payload bytes and is omitted on non-success.
type responseEnvelope struct {
	ErrorCode string          `json:"error_code"`
	ErrorInfo string          `json:"error_info"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// HTTPServer exposes the command dispatcher over HTTP. The route carries the
// action ("/api/friend/apply" -> "api.friend.apply"); the request body is the
// opaque command payload.
type HTTPServer struct {
	dispatcher *Dispatcher
	log        *logrus.Logger
}

func NewHTTPServer(dispatcher *Dispatcher, log *logrus.Logger) *HTTPServer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &HTTPServer{dispatcher: dispatcher, log: log}
}

func (s *HTTPServer) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/{section}/{method}", s.handleCommand).Methods("POST")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/health", s.health).Methods("GET")
	return router
}

func (s *HTTPServer) handleCommand(w http.ResponseWriter, r *http.Request) {
	claims, err := s.authenticate(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	action := "api." + vars["section"] + "." + vars["method"]

	params, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"action": action,
			"error":  err,
		}).Error("failed to read command payload")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	cmd := &Command{
		Action:     action,
		SiteUserID: claims.SiteUserID,
		Params:     params,
		ClientIP:   clientIP(r),
	}

	resp := s.dispatcher.Dispatch(r.Context(), cmd)
	s.writeResponse(w, resp)
}

func (s *HTTPServer) authenticate(r *http.Request) (*common.Claims, error) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, errMissingAuth
	}
	return common.ValidToken(parts[1])
}

func (s *HTTPServer) writeResponse(w http.ResponseWriter, resp *CommandResponse) {
	envelope := responseEnvelope{
		ErrorCode: resp.Status.Code(),
		ErrorInfo: resp.Status.Info(),
	}
	if resp.Status.OK() && len(resp.Params) > 0 {
		envelope.Data = resp.Params
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(&envelope); err != nil {
		s.log.WithField("error", err).Error("failed to write response")
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
