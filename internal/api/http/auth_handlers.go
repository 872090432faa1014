package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roadready/roadready-backend/internal/auth"
	"github.com/roadready/roadready-backend/internal/states"
)

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	State     string `json:"state" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/register
func RegisterHandler(svc *auth.AuthService, users auth.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		req.State = strings.ToUpper(req.State)
		if err := validate.Struct(req); err != nil {
			writeErr(w, http.StatusBadRequest, "Please provide all required fields")
			return
		}
		if !states.Valid(req.State) {
			writeErr(w, http.StatusBadRequest, "Invalid state code")
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			serverError(w, "hash password", err)
			return
		}
		u := auth.User{
			ID:        uuid.NewString(),
			Email:     req.Email,
			Hash:      hash,
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			State:     req.State,
			CreatedAt: time.Now().Unix(),
		}
		if err := users.CreateUser(r.Context(), u); err != nil {
			if errors.Is(err, auth.ErrEmailTaken) {
				writeErr(w, http.StatusBadRequest, "Email already registered")
				return
			}
			serverError(w, "create user", err)
			return
		}

		tok, err := svc.IssueJWT(u.ID, u.Email, u.State)
		if err != nil {
			serverError(w, "issue token", err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"token": tok, "user": u})
	}
}

// POST /api/auth/login
func LoginHandler(svc *auth.AuthService, users auth.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if err := validate.Struct(req); err != nil {
			writeErr(w, http.StatusBadRequest, "Please provide email and password")
			return
		}

		u, err := users.UserByEmail(r.Context(), req.Email)
		if errors.Is(err, auth.ErrUserNotFound) || (err == nil && !auth.CheckPassword(u.Hash, req.Password)) {
			writeErr(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if err != nil {
			serverError(w, "lookup user", err)
			return
		}

		tok, err := svc.IssueJWT(u.ID, u.Email, u.State)
		if err != nil {
			serverError(w, "issue token", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"token": tok, "user": u})
	}
}

// GET /api/auth/me
func MeHandler(users auth.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := users.UserByID(r.Context(), auth.SubjectFromContext(r.Context()))
		if errors.Is(err, auth.ErrUserNotFound) {
			writeErr(w, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			serverError(w, "lookup user", err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}
