package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/umputun/newsdesk/pkg/auth"
	"github.com/umputun/newsdesk/pkg/domain"
)

// loginResponse carries the issued token and the logged in user
type loginResponse struct {
	auth.Token
	User *domain.User `json:"user"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// authMiddleware requires a valid bearer token, and admin claims when adminOnly is set
func (s *Server) authMiddleware(adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := s.tokens.Parse(auth.BearerToken(r))
			if err != nil {
				renderError(w, r, errors.New("authorization required"), http.StatusUnauthorized)
				return
			}
			if adminOnly && !claims.Admin {
				renderError(w, r, errors.New("admin access required"), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

// registerHandler creates a user account, the first account becomes admin
func (s *Server) registerHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}
	req.Username, req.Email = strings.TrimSpace(req.Username), strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		renderErr(w, r, domain.Invalid("", "Username, email, and password are required"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	user, err := s.stores.Users.Create(r.Context(), &domain.User{Username: req.Username, Email: req.Email, PasswordHash: hash})
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, registerResponse{Message: "User created successfully", User: user})
}

// loginHandler checks credentials and issues an access token
func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		renderErr(w, r, domain.Invalid("", "Username and password are required"))
		return
	}

	user, err := s.stores.Users.GetByUsername(r.Context(), strings.TrimSpace(req.Username))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		renderErr(w, r, err)
		return
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		renderError(w, r, errors.New("Invalid credentials"), http.StatusUnauthorized) //nolint:staticcheck // client facing message
		return
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		renderErr(w, r, fmt.Errorf("issue token: %w", err))
		return
	}
	renderJSON(w, r, http.StatusOK, loginResponse{Token: token, User: user})
}

// getProfileHandler returns the current user
func (s *Server) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFrom(r.Context())
	user, err := s.stores.Users.Get(r.Context(), claims.UserID)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, user)
}

// updateProfileHandler changes username or email of the current user
func (s *Server) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFrom(r.Context())
	var upd domain.UserUpdate
	if err := decodeJSON(r, &upd); err != nil {
		renderErr(w, r, err)
		return
	}
	user, err := s.stores.Users.Update(r.Context(), claims.UserID, upd)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, user)
}
