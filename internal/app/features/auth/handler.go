// internal/app/features/auth/handler.go
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	apierrors "github.com/thanachok11/CIS-Help-Me/internal/app/features/errors"
	userstore "github.com/thanachok11/CIS-Help-Me/internal/app/store/users"
	sysauth "github.com/thanachok11/CIS-Help-Me/internal/app/system/auth"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/authz"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/password"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/ratelimit"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/timeouts"
	"github.com/thanachok11/CIS-Help-Me/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// defaultProfileImg is the placeholder avatar assigned at registration.
const defaultProfileImg = "https://res.cloudinary.com/dboau6axv/image/upload/v1735641179/qa9dfyxn8spwm0nwtako.jpg"

// Handler owns account registration, login, token renewal, and the staff
// user listing. It issues the bearer tokens the rest of the API consumes.
type Handler struct {
	Users   *userstore.Store
	Tokens  *sysauth.TokenManager
	Limiter *ratelimit.LoginLimiter
	Log     *zap.Logger
	ErrLog  *apierrors.ErrorLogger
}

// NewHandler constructs an auth Handler bound to the given Mongo database,
// token manager, and logger.
func NewHandler(db *mongo.Database, tokens *sysauth.TokenManager, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:   userstore.New(db),
		Tokens:  tokens,
		Limiter: ratelimit.NewLoginLimiter(),
		Log:     logger,
		ErrLog:  errLog,
	}
}

// ServeRegister handles POST /api/auth/register.
// New accounts always get the member role; staff accounts are provisioned
// out of band.
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apierrors.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.StudentID) == "" || strings.TrimSpace(in.Residence) == "" {
		apierrors.Fail(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		apierrors.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		Name:         in.Name,
		Phone:        in.Phone,
		StudentID:    in.StudentID,
		Residence:    in.Residence,
		PasswordHash: hash,
		Role:         authz.RoleMember,
		ProfileImg:   defaultProfileImg,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateStudentID) {
			apierrors.Fail(w, http.StatusBadRequest, "This studentId is already in use")
			return
		}
		h.ErrLog.Internal(w, r, "Registration failed", err)
		return
	}

	h.Log.Info("new user registered",
		zap.String("user_id", user.ID.Hex()),
		zap.String("student_id", user.StudentID))

	apierrors.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Registration successful",
	})
}

// ServeLogin handles POST /api/auth/login, exchanging studentId and
// password for a signed bearer token.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apierrors.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if allowed, reason := h.Limiter.Check(r, in.StudentID); !allowed {
		h.Log.Warn("login rate limited",
			zap.String("student_id", in.StudentID),
			zap.String("ip", ratelimit.ClientIP(r)))
		apierrors.Fail(w, http.StatusTooManyRequests, reason)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	user, err := h.Users.GetByStudentID(ctx, in.StudentID)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			apierrors.Fail(w, http.StatusBadRequest, "User not found")
			return
		}
		h.ErrLog.Internal(w, r, "Login failed", err)
		return
	}

	if err := password.Check(in.Password, user.PasswordHash); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			apierrors.Fail(w, http.StatusBadRequest, "Invalid password")
			return
		}
		h.ErrLog.Internal(w, r, "Login failed", err)
		return
	}

	h.Limiter.ResetStudent(in.StudentID)

	token, err := h.Tokens.Issue(sysauth.Principal{
		ID:         user.ID.Hex(),
		Name:       user.Name,
		StudentID:  user.StudentID,
		Role:       user.Role,
		ProfileImg: user.ProfileImg,
	})
	if err != nil {
		h.ErrLog.Internal(w, r, "Login failed", err)
		return
	}

	apierrors.JSON(w, http.StatusOK, loginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		Role:    user.Role,
	})
}

// ServeRenew handles GET /api/auth/renew. A valid, unexpired token is
// exchanged for a fresh one with a full lifetime.
func (h *Handler) ServeRenew(w http.ResponseWriter, r *http.Request) {
	raw, err := sysauth.ExtractToken(r.Header.Get("Authorization"))
	if err != nil {
		apierrors.Fail(w, http.StatusUnauthorized, "No token provided")
		return
	}

	p, err := h.Tokens.Verify(raw)
	if err != nil {
		apierrors.Fail(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	token, err := h.Tokens.Issue(p)
	if err != nil {
		h.ErrLog.Internal(w, r, "Token renewal failed", err)
		return
	}

	apierrors.JSON(w, http.StatusOK, tokenResponse{Success: true, Token: token})
}

// ServeUsers handles GET /api/auth/users (staff only). Password hashes
// never leave the store.
func (h *Handler) ServeUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "Error fetching users", err)
		return
	}

	apierrors.JSON(w, http.StatusOK, usersResponse{Success: true, Users: users})
}
