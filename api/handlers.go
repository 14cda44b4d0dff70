package api

import (
	"encoding/json"
	"net/http"

	"github.com/jonwraymond/authgate/observe"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// handleLogin exchanges credentials for a signed token.
//
// Unknown email and wrong password produce the same generic 401 so the
// response never reveals which of the two was wrong.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := s.store.Lookup(req.Email)
	if err != nil || !s.store.VerifyPassword(user, req.Password) {
		s.logger.Warn(r.Context(), "login rejected",
			observe.Field{Key: "email", Value: req.Email})
		writeMessage(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		s.logger.Error(r.Context(), "token issuance failed",
			observe.Field{Key: "error", Value: err.Error()})
		writeMessage(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	s.logger.Info(r.Context(), "login succeeded",
		observe.Field{Key: "email", Value: req.Email})
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
