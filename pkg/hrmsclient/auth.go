package hrmsclient

import (
	"context"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresAt    int64  `json:"expiresAt"`
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	FullName     string `json:"fullName"`
	IsFirstLogin bool   `json:"isFirstLogin"`
}

// Login authenticates and persists the session on success.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if _, err := c.post(ctx, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, err
	}

	user := &SessionUser{
		ID:           resp.UserID,
		Email:        resp.Email,
		Role:         resp.Role,
		IsFirstLogin: resp.IsFirstLogin,
	}
	if err := c.session.Save(resp.AccessToken, user); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the authenticated user and refreshes the stored snapshot.
// A 401 here clears the session (see Client.do).
func (c *Client) Me(ctx context.Context) (*SessionUser, error) {
	var user SessionUser
	if _, err := c.get(ctx, currentUserPath, &user); err != nil {
		return nil, err
	}
	_ = c.session.Save(c.session.Token(), &user)
	return &user, nil
}

// Logout revokes the token server-side and clears the session. The
// session is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.post(ctx, "/api/v1/auth/logout", nil, nil)
	c.session.Clear()
	return err
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if _, err := c.post(ctx, "/api/v1/auth/change-password", req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken != "" {
		_ = c.session.Save(resp.AccessToken, c.session.User())
	}
	return &resp, nil
}

type SecurityQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (c *Client) SetSecurityQuestions(ctx context.Context, questions []SecurityQuestion) error {
	body := map[string]any{"questions": questions}
	_, err := c.post(ctx, "/api/v1/auth/security-questions", body, nil)
	return err
}

func (c *Client) VerifySecurityAnswer(ctx context.Context, email, question, answer string) error {
	body := map[string]string{"email": email, "question": question, "answer": answer}
	_, err := c.post(ctx, "/api/v1/auth/security-questions/verify", body, nil)
	return err
}
