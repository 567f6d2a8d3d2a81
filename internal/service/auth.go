package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"jobhub/internal/cache"
	"jobhub/internal/middleware/auth"
	"jobhub/internal/models"
	"jobhub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNameInUse          = errors.New("username already in use")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrResetTokenPending  = errors.New("a reset token was sent recently, try later")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
)

// Claims carried in the access token.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, username, password, email, nickName string) (*models.User, error)
	Login(ctx context.Context, username, password string) (token string, user *models.User, err error)
	ValidateToken(tokenString string) (*Claims, error)
	RequestPasswordReset(ctx context.Context, email string) (token string, err error)
	ResetPassword(ctx context.Context, username, token, newPassword string) error
	GetUser(ctx context.Context, id string) (*models.User, error)
}

type authService struct {
	userRepo       repository.UserRepository
	store          cache.Store
	coherence      *cache.Coherence
	jwtSecret      string
	accessTokenTTL time.Duration
	resetTokenTTL  time.Duration
	logger         *slog.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	store cache.Store,
	coherence *cache.Coherence,
	jwtSecret string,
	accessTokenTTL, resetTokenTTL time.Duration,
	logger *slog.Logger,
) AuthService {
	return &authService{
		userRepo:       userRepo,
		store:          store,
		coherence:      coherence,
		jwtSecret:      jwtSecret,
		accessTokenTTL: accessTokenTTL,
		resetTokenTTL:  resetTokenTTL,
		logger:         logger,
	}
}

func (s *authService) Register(ctx context.Context, username, password, email, nickName string) (*models.User, error) {
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrNameInUse
	}
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    email,
		Password: hashedPassword,
		NickName: nickName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.coherence.OnMutation(ctx, cache.KindUser)
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		// Dummy compare so a missing user takes as long as a wrong password.
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return "", nil, ErrInvalidCredentials
	}
	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Warn("failed to record last login", "user", user.Username, "error", err)
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RequestPasswordReset issues a per-user reset token, cached with a TTL.
// While a token is outstanding no new one is issued.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrUserNotFound
	}

	key := cache.ForgotPasswordTokenKey(user.Username)
	var existing string
	if err := s.store.Get(ctx, key, &existing); err == nil {
		return "", ErrResetTokenPending
	}

	token := uuid.New().String()
	if err := s.store.Set(ctx, key, token, s.resetTokenTTL); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword consumes a reset token: on success the token is deleted so it
// cannot be replayed.
func (s *authService) ResetPassword(ctx context.Context, username, token, newPassword string) error {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return ErrUserNotFound
	}

	key := cache.ForgotPasswordTokenKey(username)
	var stored string
	if err := s.store.Get(ctx, key, &stored); err != nil || stored != token {
		return ErrResetTokenInvalid
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashedPassword
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to expire reset token", "user", username, "error", err)
	}
	return nil
}

func (s *authService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
