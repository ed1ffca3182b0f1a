package auth

import (
	"github.com/workforcelab/hrms-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken,omitempty"`
	ExpiresAt    int64   `json:"expiresAt"`
	UserID       string  `json:"userId"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	FullName     *string `json:"fullName,omitempty"`
	IsFirstLogin bool    `json:"isFirstLogin"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (r RefreshRequest) Validate() error {
	if validator.IsEmpty(r.RefreshToken) {
		return validator.ValidationErrors{{Field: "refreshToken", Message: "is required"}}
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{Field: "currentPassword", Message: "is required"})
	}
	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{Field: "newPassword", Message: "must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SecurityQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

type SetSecurityQuestionsRequest struct {
	Questions []SecurityQuestion `json:"questions"`
}

func (r SetSecurityQuestionsRequest) Validate() error {
	if len(r.Questions) == 0 {
		return validator.ValidationErrors{{Field: "questions", Message: "at least one question is required"}}
	}

	for _, q := range r.Questions {
		if validator.IsEmpty(q.Question) || validator.IsEmpty(q.Answer) {
			return validator.ValidationErrors{{Field: "questions", Message: "question and answer are both required"}}
		}
	}
	return nil
}

type VerifySecurityAnswerRequest struct {
	Email    string `json:"email"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (r VerifySecurityAnswerRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Question) {
		errs = append(errs, validator.ValidationError{Field: "question", Message: "is required"})
	}
	if validator.IsEmpty(r.Answer) {
		errs = append(errs, validator.ValidationError{Field: "answer", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
