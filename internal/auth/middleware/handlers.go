package auth

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/logging"
	"github.com/mind-engage/mindengage-advisor/internal/validation"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func issue(w http.ResponseWriter, r *http.Request, a *AuthService, u User, status int) {
	tok, err := a.IssueJWT(u.ID, u.Role)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("issue token")
		writeErr(w, http.StatusInternalServerError, "INTERNAL", "issue token")
		return
	}
	writeJSON(w, status, tokenResponse{AccessToken: tok, TokenType: "Bearer", ExpiresIn: int64(a.TTL().Seconds())})
}

// POST /auth/login  { "email": "...", "password": "..." }
func LoginHandler(a *AuthService, users UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required"`
		}
		if !decode(w, r, &req) {
			return
		}
		u, err := users.ByEmail(r.Context(), req.Email)
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			logging.Ctx(r.Context()).Error().Err(err).Msg("login lookup")
			writeErr(w, http.StatusInternalServerError, "INTERNAL", "login failed")
			return
		}
		if err != nil || !CheckPassword(u.PasswordHash, req.Password) {
			writeErr(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials")
			return
		}
		issue(w, r, a, u, http.StatusOK)
	}
}

// POST /auth/register  { "email", "password", "fullName", "major"?, "academicLevel"? }
// Creates a student user and an empty academic profile bound to it.
func RegisterHandler(a *AuthService, users UserStore, profiles academic.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email         string `json:"email" validate:"required,email"`
			Password      string `json:"password" validate:"required,min=8,max=72"`
			FullName      string `json:"fullName" validate:"required,max=200"`
			Major         string `json:"major" validate:"max=100"`
			AcademicLevel string `json:"academicLevel" validate:"omitempty,oneof=freshman sophomore junior senior graduate"`
		}
		if !decode(w, r, &req) {
			return
		}
		hash, err := HashPassword(req.Password)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, "INTERNAL", "hash password")
			return
		}
		u, err := users.Create(r.Context(), User{Email: req.Email, PasswordHash: hash, Role: "student"})
		if errors.Is(err, ErrEmailTaken) {
			writeErr(w, http.StatusConflict, "EMAIL_TAKEN", err.Error())
			return
		}
		if err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Msg("register user")
			writeErr(w, http.StatusInternalServerError, "INTERNAL", "register failed")
			return
		}
		if _, err := profiles.PutStudent(r.Context(), academic.Student{
			UserID:        u.ID,
			FullName:      req.FullName,
			Email:         u.Email,
			Major:         req.Major,
			AcademicLevel: req.AcademicLevel,
		}); err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Str("user_id", u.ID).Msg("create student profile")
			// a user without a profile could log in but never use the API
			if derr := users.Delete(r.Context(), u.ID); derr != nil {
				logging.Ctx(r.Context()).Error().Err(derr).Str("user_id", u.ID).Msg("roll back user")
			}
			writeErr(w, http.StatusInternalServerError, "INTERNAL", "register failed")
			return
		}
		logging.Ctx(r.Context()).Info().Str("user_id", u.ID).Msg("student registered")
		issue(w, r, a, u, http.StatusCreated)
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if apiErr := validation.DecodeRequest(w, r, dst); apiErr != nil {
		writeErr(w, http.StatusBadRequest, apiErr.Code, apiErr.Message)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]any{"error": map[string]string{"code": code, "message": msg}})
}
