package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Josef-ino/poksys/pkg/apperror"
	"github.com/Josef-ino/poksys/pkg/utils"
)

// AuthService authenticates the single configured operator account.
type AuthService struct {
	jwtManager   *utils.JWTManager
	username     string
	passwordHash []byte
}

// NewAuthService hashes the configured operator password and creates the
// service. The plaintext is not retained.
func NewAuthService(jwtManager *utils.JWTManager, username, password string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash operator password: %w", err)
	}
	return &AuthService{
		jwtManager:   jwtManager,
		username:     username,
		passwordHash: hash,
	}, nil
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput carries the issued tokens.
type LoginOutput struct {
	Username     string
	AccessToken  string
	RefreshToken string
}

// Login checks the operator credentials and issues tokens.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(input.Password))
	if !usernameOK || passwordErr != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(s.username)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(s.username)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Username:     s.username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	username, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}
	if username != s.username {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(s.username)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{
		Username:    s.username,
		AccessToken: accessToken,
	}, nil
}
