package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/metrics"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const sessionCookieName = "jwt"

var validate = validator.New()

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService   service.AuthService
	logger        *zap.Logger
	rec           metrics.Recorder
	sessionTTL    time.Duration
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler. secureCookies marks the session
// cookie Secure; it is off only for local HTTP development.
func NewAuthHandler(authService service.AuthService, logger *zap.Logger, rec metrics.Recorder, sessionTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		logger:        logger,
		rec:           rec,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
	}
}

// --- Request/Response Structs ---

type SignUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Name            string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// --- Cookie helpers ---

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, token, int(h.sessionTTL.Seconds()), "/", "", h.secureCookies, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", h.secureCookies, true)
}

// --- Handler Methods ---

// SignUp godoc
// @Summary Register a new account
// @Description Creates the account and profile and starts a session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body SignUpRequest true "Sign-up details"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Missing fields, invalid email, bad password or markup in name"
// @Failure 409 {object} MessageResponse "Email already in use"
// @Failure 429 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" || req.ConfirmPassword == "" || strings.TrimSpace(req.Name) == "" {
		abortWithError(c, http.StatusBadRequest, "All fields are required")
		return
	}
	if err := validate.Var(strings.TrimSpace(req.Email), "email"); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid email address")
		return
	}

	session, err := h.authService.SignUp(c.Request.Context(), service.SignUpInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			abortWithError(c, http.StatusBadRequest, "Passwords do not match")
		case errors.Is(err, service.ErrWeakPassword):
			abortWithError(c, http.StatusBadRequest, "Password is too weak")
		case errors.Is(err, service.ErrPasswordTooLong):
			abortWithError(c, http.StatusBadRequest, "Password must be at most 72 bytes")
		case errors.As(err, &vErr):
			abortWithError(c, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, service.ErrEmailInUse):
			abortWithError(c, http.StatusConflict, "Email is already in use")
		default:
			h.logger.Error("sign-up failed", zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	h.rec.RecordAuth(metrics.AuthSignup)
	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusCreated, MessageResponse{Message: "User registered successfully!"})
}

// Login godoc
// @Summary Log in
// @Description Verifies the credentials and starts a session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Email and Password are required"
// @Failure 401 {object} MessageResponse "Invalid credentials"
// @Failure 429 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		abortWithError(c, http.StatusBadRequest, "Email and Password are required")
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			h.rec.RecordAuth(metrics.AuthLoginFailed)
			abortWithError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	h.rec.RecordAuth(metrics.AuthLogin)
	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusOK, MessageResponse{Message: "Login Successful"})
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie. The token itself stays valid until it expires.
// @Tags Auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, MessageResponse{Message: "Logout Successful"})
}

// GetProfile godoc
// @Summary Get a user profile
// @Tags Auth
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} map[string]domain.User
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} MessageResponse "User not found"
// @Router /auth/profile/{uid} [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	h.writeProfile(c, c.Param("uid"))
}

// Me godoc
// @Summary Get the profile of the logged-in user
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]domain.User
// @Failure 401 {object} MessageResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	uid, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	h.writeProfile(c, uid)
}

func (h *AuthHandler) writeProfile(c *gin.Context, uid string) {
	if strings.TrimSpace(uid) == "" {
		abortWithError(c, http.StatusBadRequest, "User ID is required")
		return
	}
	profile, err := h.authService.GetProfile(c.Request.Context(), uid)
	if err != nil {
		handleServiceError(c, h.logger, "get profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
