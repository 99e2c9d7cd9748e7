package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"campusfound/internal/auth"
	"campusfound/internal/model"
	"campusfound/internal/store"
)

// AuthHandler handles signup, login and profile endpoints.
type AuthHandler struct {
	DB        *sql.DB
	JWTSecret string
	TokenTTL  time.Duration
}

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Signup registers a new student account and logs it in.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := store.Signup(r.Context(), h.DB, req.Name, req.Email, req.Password)
	if err != nil {
		if store.IsValidation(err) {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("creating account", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	h.respondWithToken(w, http.StatusCreated, user)
}

// Login authenticates a user by email and password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := store.Login(r.Context(), h.DB, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			jsonError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		slog.Error("logging in", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

// Logout clears the persisted session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := store.ClearSession(r.Context(), h.DB); err != nil {
		slog.Error("clearing session", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to log out")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the account behind the request's token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := viewer(r, h.DB)
	if user == nil {
		jsonError(w, http.StatusUnauthorized, "account no longer exists")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"user": user.Public()})
}

type profileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateProfile updates the token bearer's name and phone number. Identity
// comes from the token claims, never from the shared session pointer, so one
// user's request cannot touch another account.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := GetClaims(r.Context()).UserID
	user, err := store.UpdateProfileFor(r.Context(), h.DB, userID, req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, store.ErrNotLoggedIn) {
			jsonError(w, http.StatusUnauthorized, "not logged in")
			return
		}
		slog.Error("updating profile", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{"user": user.Public()})
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, user *model.User) {
	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Email, user.Role, h.TokenTTL)
	if err != nil {
		slog.Error("generating token", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	jsonResponse(w, status, authResponse{Token: token, User: user.Public()})
}
