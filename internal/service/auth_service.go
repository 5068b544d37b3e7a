package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"studydeck/internal/config"
	"studydeck/internal/domain"
	"studydeck/internal/dto"
	"studydeck/internal/logger"
	"studydeck/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService handles registration, login, and bearer-token validation.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*dto.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	userRepo domain.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo domain.UserRepository, jwtCfg config.JWTConfig) (AuthService, error) {
	if jwtCfg.Secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	ttl := jwtCfg.TTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &authServiceImpl{
		userRepo: userRepo,
		secret:   []byte(jwtCfg.Secret),
		tokenTTL: ttl,
	}, nil
}

func (s *authServiceImpl) Register(ctx context.Context, username, email, password string) (*dto.AuthResponse, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, domain.NewInvalidInputError("Please provide username, email, and password.")
	}

	existing, err := s.userRepo.GetUserByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, domain.NewInternalError("Failed to check existing users", err)
	}
	if existing != nil {
		return nil, domain.NewAlreadyExistsError("User with this email or username already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	user := &domain.User{
		ID:           util.NewULID(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, domain.NewPersistenceError("Failed to create user", err)
	}

	token, err := s.createJWT(user)
	if err != nil {
		return nil, domain.NewInternalError("Failed to sign token", err)
	}

	logger.Get().Info("Registered user", zap.String("user_id", user.ID))
	return &dto.AuthResponse{
		Status:  "success",
		Message: "User registered successfully!",
		Token:   token,
		Data:    dto.AuthUserData{ID: user.ID, Username: user.Username, Email: user.Email},
	}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.NewInvalidInputError("Please provide email and password.")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewUnauthorizedError("Invalid credentials.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.NewUnauthorizedError("Invalid credentials.")
	}

	token, err := s.createJWT(user)
	if err != nil {
		return nil, domain.NewInternalError("Failed to sign token", err)
	}

	return &dto.AuthResponse{
		Status:  "success",
		Message: "Login successful!",
		Token:   token,
		Data:    dto.AuthUserData{ID: user.ID, Username: user.Username, Email: user.Email},
	}, nil
}

func (s *authServiceImpl) createJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	claims := &dto.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}
