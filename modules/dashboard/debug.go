package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/dashboard/pkg/environment"
	"github.com/dmitrymomot/dashboard/pkg/jwt"
)

type debugResponse struct {
	OK      bool          `json:"ok"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
	Payload *jwt.Identity `json:"payload,omitempty"`
}

// debugGetAuthResponse always carries the user key, null when unauthenticated.
type debugGetAuthResponse struct {
	OK   bool          `json:"ok"`
	User *jwt.Identity `json:"user"`
}

func (s *Service) debugAuth(w http.ResponseWriter, r *http.Request) {
	if environment.IsProduction(r.Context()) {
		writeJSON(w, http.StatusForbidden, debugResponse{Message: "disabled in production"})
		return
	}

	c, err := r.Cookie(s.cookieName)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, debugResponse{Message: "no auth cookie present"})
		return
	}
	if c.Value == "" {
		writeJSON(w, http.StatusUnauthorized, debugResponse{Message: "empty token"})
		return
	}

	id, err := s.verifier.Verify(c.Value)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, debugResponse{
			Message: "token verification failed",
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, debugResponse{OK: true, Payload: &id})
}

func (s *Service) debugGetAuth(w http.ResponseWriter, r *http.Request) {
	if environment.IsProduction(r.Context()) {
		writeJSON(w, http.StatusForbidden, debugResponse{Message: "disabled in production"})
		return
	}

	resp := debugGetAuthResponse{OK: true}
	if id, ok := s.reader.CurrentUser(r); ok {
		resp.User = &id
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
