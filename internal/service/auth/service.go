package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/workforcelab/hrms-backend-go/internal/domain/auth"
	"github.com/workforcelab/hrms-backend-go/internal/domain/user"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/jwt"
)

type Service struct {
	user.UserRepository
	jwtService jwt.Service
}

func NewService(userRepository user.UserRepository, jwtService jwt.Service) *Service {
	return &Service{
		UserRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Login verifies credentials and issues a token pair. A refresh token
// is only issued when the caller asked to stay signed in.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		// Same failure for unknown email and wrong password.
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if u.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.OrganizationID, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	resp := auth.LoginResponse{
		AccessToken:  token,
		ExpiresAt:    expiresAt,
		UserID:       u.ID,
		Email:        u.Email,
		Role:         string(u.Role.Normalized()),
		IsFirstLogin: u.IsFirstLogin,
	}

	if req.Remember {
		refresh, _, err := s.jwtService.GenerateRefreshToken(u.ID)
		if err != nil {
			return auth.LoginResponse{}, fmt.Errorf("generate refresh token: %w", err)
		}
		resp.RefreshToken = refresh
	}

	return resp, nil
}

// Me returns the authenticated user's profile.
func (s *Service) Me(ctx context.Context, userID string) (user.User, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	u.PasswordHash = nil
	return u, nil
}

// ChangePassword rotates the password and returns a fresh token pair so
// the session continues without a re-login.
func (s *Service) ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) (auth.LoginResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if u.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrPasswordMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.LoginResponse{}, auth.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("hash password: %w", err)
	}
	if err := s.UserRepository.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return auth.LoginResponse{}, err
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.OrganizationID, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      u.ID,
		Email:       u.Email,
		Role:        string(u.Role.Normalized()),
	}, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *Service) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.LoginResponse, error) {
	userID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.OrganizationID, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      u.ID,
		Email:       u.Email,
		Role:        string(u.Role.Normalized()),
	}, nil
}

// Logout revokes the presented access token.
func (s *Service) Logout(ctx context.Context, token string) {
	s.jwtService.RevokeToken(token)
}

// SetSecurityQuestions stores bcrypt hashes of the normalized answers.
func (s *Service) SetSecurityQuestions(ctx context.Context, userID string, req auth.SetSecurityQuestionsRequest) error {
	questions := make([]user.SecurityQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		hash, err := bcrypt.GenerateFromPassword([]byte(normalizeAnswer(q.Answer)), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash security answer: %w", err)
		}
		questions = append(questions, user.SecurityQuestion{
			Question:   q.Question,
			AnswerHash: string(hash),
		})
	}
	return s.UserRepository.SaveSecurityQuestions(ctx, userID, questions)
}

// VerifySecurityAnswer checks one answer for password recovery.
func (s *Service) VerifySecurityAnswer(ctx context.Context, req auth.VerifySecurityAnswerRequest) error {
	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return user.ErrSecurityAnswer
	}

	questions, err := s.UserRepository.GetSecurityQuestions(ctx, u.ID)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return user.ErrNoSecurityQuestion
	}

	for _, q := range questions {
		if q.Question != req.Question {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(q.AnswerHash), []byte(normalizeAnswer(req.Answer))) == nil {
			return nil
		}
		return user.ErrSecurityAnswer
	}
	return user.ErrNoSecurityQuestion
}

// Answers compare case- and whitespace-insensitively.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
