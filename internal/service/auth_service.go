package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLength is the shortest password the credential store accepts.
	MinPasswordLength = 6
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72

	rollbackTimeout = 5 * time.Second
)

// --- Error Definitions ---
var (
	ErrEmailInUse           = errors.New("email is already in use")
	ErrWeakPassword         = errors.New("password is too weak")
	ErrPasswordTooLong      = errors.New("password is too long")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrAuthenticationFailed = errors.New("invalid email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrHashingFailed        = errors.New("failed to hash password")
)

// Session is the result of a successful sign-up or login.
type Session struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}

// SignUpInput carries the sign-up form.
type SignUpInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthService covers account creation, login and session resolution.
type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	GetProfile(ctx context.Context, uid string) (*domain.User, error)
	// Authenticate verifies a session token and loads the account it names.
	// It returns ErrInvalidToken or ErrUserNotFound for client-side problems;
	// any other error means the store could not be reached.
	Authenticate(ctx context.Context, token string) (*domain.Credential, error)
}

type authService struct {
	credentials repository.CredentialRepository
	users       repository.UserRepository
	tokens      TokenService
	logger      *zap.Logger
	hashCost    int
	now         func() time.Time
}

// NewAuthService creates a new instance of authService.
func NewAuthService(
	credentials repository.CredentialRepository,
	users repository.UserRepository,
	tokens TokenService,
	logger *zap.Logger,
) AuthService {
	return &authService{
		credentials: credentials,
		users:       users,
		tokens:      tokens,
		logger:      logger,
		hashCost:    bcrypt.DefaultCost,
		now:         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates the account and then the profile document. If the profile
// write fails the account is deleted again so the email can be reused.
func (s *authService) SignUp(ctx context.Context, in SignUpInput) (*Session, error) {
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(in.Password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}
	if len(in.Password) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	if err := rejectMarkup("name", in.Name); err != nil {
		return nil, err
	}
	email := normalizeEmail(in.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	uid, err := s.credentials.Create(ctx, &domain.Credential{Email: email, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("create credential: %w", err)
	}

	profile := &domain.User{
		UID:      uid,
		Email:    email,
		Name:     in.Name,
		JoinDate: s.now().UTC().Format(time.RFC3339),
	}
	if err := s.users.Create(ctx, profile); err != nil {
		if delErr := s.rollbackCredential(ctx, uid); delErr != nil {
			s.logger.Error("sign-up rollback failed, orphaned credential",
				zap.String("uid", uid),
				zap.Error(delErr),
			)
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	return s.issue(uid)
}

// rollbackCredential deletes uid even when ctx is already cancelled; a
// disconnected client must not leave the email blocked.
func (s *authService) rollbackCredential(ctx context.Context, uid string) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()
	return s.credentials.Delete(ctx, uid)
}

// Login checks the password against the stored hash.
func (s *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	cred, err := s.credentials.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("load credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, ErrAuthenticationFailed
	}

	return s.issue(cred.UID())
}

func (s *authService) issue(uid string) (*Session, error) {
	token, expiresAt, err := s.tokens.Issue(uid)
	if err != nil {
		return nil, err
	}
	return &Session{UserID: uid, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) GetProfile(ctx context.Context, uid string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*domain.Credential, error) {
	uid, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	cred, err := s.credentials.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return cred, nil
}
