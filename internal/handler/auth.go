package handler

import (
	"context"  // provides context with cancellation for DB calls
	"errors"   // sentinel error matching at the boundary
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/helenus/hotel-api/internal/config"     // app configuration
	"github.com/helenus/hotel-api/internal/mail"       // outgoing mail transport
	"github.com/helenus/hotel-api/internal/repository" // DB repositories
	"github.com/helenus/hotel-api/internal/service"    // account orchestration
	"github.com/helenus/hotel-api/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for account and session endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Accounts *service.AccountService
	Refresh  *repository.RefreshTokenRepo
	Mailer   mail.Mailer
}

func NewAuthHandler(cfg config.Config, accounts *service.AccountService, refresh *repository.RefreshTokenRepo, mailer mail.Mailer) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Accounts: accounts, Refresh: refresh, Mailer: mailer}
}

// ----- DTOs -----

type registerReq struct {
	UserName    string `json:"userName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Nationality string `json:"nationality"`
	Password    string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type verifyReq struct {
	Token string `json:"token"`
}
type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

// loginResp is the shape the frontend stores after login.
type loginResp struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
	Name         string `json:"name"`
}

// Register: create an unverified client account and mail out the
// verification token.  Duplicate email or username come back as 400 with a
// distinguishable message.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.UserName = strings.TrimSpace(req.UserName)
	if req.Email == "" || req.UserName == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	err := h.Accounts.Register(ctx, service.RegisterInput{
		UserName:    req.UserName,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Email:       req.Email,
		Nationality: req.Nationality,
		Password:    req.Password,
	})
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "a user with this email already exists"})
	case errors.Is(err, service.ErrDuplicateUserName):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username is already taken"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "registration successful, please verify your email"})
}

// Login: verify credentials and hand out a token pair.  The status
// progression is deliberate: 404 when the email is unknown, 403 when the
// account exists but is unverified, 401 on a wrong password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Accounts.Authenticate(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "invalid email or password"})
	case errors.Is(err, service.ErrNotVerified):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "please verify your email address before logging in"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, u.FirstName, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Refresh.StoreRefresh(ctx, u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}

	// 201 on success is part of the login contract the frontend expects.
	return c.JSON(http.StatusCreated, loginResp{
		Token:        access.Token,
		RefreshToken: refresh.Raw, // raw back to client
		Role:         u.Role,
		Name:         u.FirstName,
	})
}

// VerifyEmail: consume a verification token and flip the account flag.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req verifyReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Token) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "token required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Accounts.Verify(ctx, strings.TrimSpace(req.Token))
	switch {
	case errors.Is(err, service.ErrInvalidToken):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid or expired token"})
	case errors.Is(err, repository.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	case errors.Is(err, service.ErrAlreadyVerified):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user already verified"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "verification failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "email verified successfully"})
}

// Contact: relay a contact-form message to the staff inbox.
func (h *AuthHandler) Contact(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	if err := h.Mailer.SendContact(req.Name, req.Email, req.Subject, req.Message); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to send message"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "message sent successfully"})
}

// RefreshSession: validate the presented refresh token by hash, revoke it
// and issue a fresh pair (rotation).
func (h *AuthHandler) RefreshSession(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := h.Refresh.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	_ = h.Refresh.RevokeByHash(ctx, hash)

	u, err := h.Accounts.UserByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, u.FirstName, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	next, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Refresh.StoreRefresh(ctx, u.ID, utils.HashRefreshRaw(next.Raw), next.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}

	return c.JSON(http.StatusOK, loginResp{
		Token:        access.Token,
		RefreshToken: next.Raw,
		Role:         u.Role,
		Name:         u.FirstName,
	})
}

// Logout: invalidate the presented refresh token.  Succeeds with 204 when
// the token was live; an unknown token yields 401.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Refresh.ValidateRefresh(ctx, hash); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	if err := h.Refresh.RevokeByHash(ctx, hash); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "revoke failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
