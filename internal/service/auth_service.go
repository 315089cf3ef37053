package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"aidbridge/internal/config"
	"aidbridge/internal/domain"
	"aidbridge/internal/repository"
	"aidbridge/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials or role")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, *domain.TokenPair, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.User, *domain.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	ValidateAccessToken(token string) (*Claims, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

type authService struct {
	store       *store.Store
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

// NewAuthService fronts the account store. sessionRepo may be nil, in
// which case logins return access tokens only and refresh is disabled.
func NewAuthService(st *store.Store, sessionRepo repository.SessionRepository, cfg *config.Config) AuthService {
	return &authService{
		store:       st,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

func (s *authService) Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, *domain.TokenPair, error) {
	if !input.Role.IsValid() {
		return nil, nil, ErrInvalidRole
	}
	if existing := s.store.UserByEmail(input.Email); existing != nil {
		return nil, nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	}

	s.store.AppendUser(ctx, user)

	// Signup logs the user straight in.
	tokens, err := s.generateTokenPair(ctx, &user)
	if err != nil {
		return nil, nil, err
	}

	return &user, tokens, nil
}

func (s *authService) Login(ctx context.Context, input domain.LoginInput) (*domain.User, *domain.TokenPair, error) {
	user := s.store.UserByEmail(input.Email)
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	// A role mismatch is indistinguishable from a wrong password on
	// purpose: the login form asks for all three.
	if user.Role != input.Role {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if s.sessionRepo == nil {
		return nil, ErrInvalidToken
	}

	tokenHash := hashToken(refreshToken)

	session, err := s.sessionRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrInvalidToken
	}

	user := s.store.UserByID(session.UserID)
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.sessionRepo.Revoke(ctx, tokenHash); err != nil {
		return nil, err
	}

	return s.generateTokenPair(ctx, user)
}

func (s *authService) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *authService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user := s.store.UserByID(id)
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *authService) generateTokenPair(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	accessClaims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.JWTAccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.ID.String(),
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	pair := &domain.TokenPair{
		AccessToken: accessTokenString,
		ExpiresIn:   int64(s.cfg.JWTAccessExpiry.Seconds()),
	}

	if s.sessionRepo != nil {
		refreshTokenRaw := uuid.New().String()

		session := &repository.Session{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: hashToken(refreshTokenRaw),
			ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
		}

		if err := s.sessionRepo.Create(ctx, session); err != nil {
			return nil, err
		}
		pair.RefreshToken = refreshTokenRaw
	}

	return pair, nil
}

func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
