package user

import "context"

// SecurityQuestion pairs a question with the bcrypt hash of its answer.
type SecurityQuestion struct {
	Question   string
	AnswerHash string
}

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	MarkFirstLoginDone(ctx context.Context, id string) error
	SaveSecurityQuestions(ctx context.Context, id string, questions []SecurityQuestion) error
	GetSecurityQuestions(ctx context.Context, id string) ([]SecurityQuestion, error)
}
