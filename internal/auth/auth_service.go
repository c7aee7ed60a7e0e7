package auth

import (
	"context"
	"errors"
	"time"

	autherrors "github.com/niranjan-18-25/WorkOrbit/internal/auth/errors"
	"github.com/niranjan-18-25/WorkOrbit/internal/shared/apperror"
	"github.com/niranjan-18-25/WorkOrbit/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
	GetMe(ctx context.Context, userID uint) (AuthResponse, error)
	Logout()
}

type service struct {
	repo    user.Repository
	session *Session
	secret  []byte
}

func NewService(repo user.Repository, session *Session, secret string) Service {
	return &service{repo: repo, session: session, secret: []byte(secret)}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		// Storage faults are surfaced distinctly from wrong credentials.
		return TokenPair{}, AuthResponse{}, apperror.Storage(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	access, err := s.generateToken(u.ID, u.Role, 15*time.Minute)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.generateToken(u.ID, u.Role, 7*24*time.Hour)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.session.Set(*u)

	return TokenPair{AccessToken: access, RefreshToken: refresh}, mapToAuthResponse(*u), nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}

	u, err := s.repo.FindByID(ctx, uint(rawID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrUserNotFound
		}
		return TokenPair{}, AuthResponse{}, apperror.Storage(err)
	}

	access, err := s.generateToken(u.ID, u.Role, 15*time.Minute)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.generateToken(u.ID, u.Role, 7*24*time.Hour)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, mapToAuthResponse(*u), nil
}

func (s *service) GetMe(ctx context.Context, userID uint) (AuthResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrUserNotFound
		}
		return AuthResponse{}, apperror.Storage(err)
	}
	return mapToAuthResponse(*u), nil
}

func (s *service) Logout() {
	s.session.Clear()
}

func (s *service) generateToken(userID uint, role user.Role, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func mapToAuthResponse(u user.User) AuthResponse {
	return AuthResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		Designation: u.Designation,
		Department:  u.Department,
	}
}
