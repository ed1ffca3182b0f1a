package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workforcelab/hrms-backend-go/internal/domain/user"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			id, organization_id, email, password_hash, role,
			is_first_login, created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4,
			$5, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.OrganizationID, u.Email, u.PasswordHash, u.Role,
		u.IsFirstLogin,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getBy(ctx, "u.id = $1", id)
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getBy(ctx, "LOWER(u.email) = LOWER($1)", email)
}

func (r *userRepositoryImpl) getBy(ctx context.Context, where string, arg any) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT u.id, u.organization_id, u.email, u.password_hash, u.role,
			   u.is_first_login,
			   EXISTS (SELECT 1 FROM security_questions sq WHERE sq.user_id = u.id),
			   u.created_at, u.updated_at,
			   e.id AS employee_id
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE %s
	`, where)

	var u user.User
	err := q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.OrganizationID, &u.Email, &u.PasswordHash, &u.Role,
		&u.IsFirstLogin,
		&u.HasSecurityQuestions,
		&u.CreatedAt, &u.UpdatedAt,
		&u.EmployeeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, is_first_login = FALSE, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`
	var updatedID string
	if err := q.QueryRow(ctx, query, passwordHash, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("update password for user %s: %w", id, err)
	}
	return nil
}

func (r *userRepositoryImpl) MarkFirstLoginDone(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE users SET is_first_login = FALSE, updated_at = NOW() WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *userRepositoryImpl) SaveSecurityQuestions(ctx context.Context, id string, questions []user.SecurityQuestion) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM security_questions WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("clear security questions: %w", err)
	}

	for _, sq := range questions {
		_, err := q.Exec(ctx, `
			INSERT INTO security_questions (id, user_id, question, answer_hash, created_at)
			VALUES (gen_random_uuid(), $1, $2, $3, NOW())
		`, id, sq.Question, sq.AnswerHash)
		if err != nil {
			return fmt.Errorf("save security question: %w", err)
		}
	}
	return nil
}

func (r *userRepositoryImpl) GetSecurityQuestions(ctx context.Context, id string) ([]user.SecurityQuestion, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT question, answer_hash
		FROM security_questions
		WHERE user_id = $1
		ORDER BY created_at
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []user.SecurityQuestion
	for rows.Next() {
		var sq user.SecurityQuestion
		if err := rows.Scan(&sq.Question, &sq.AnswerHash); err != nil {
			return nil, err
		}
		questions = append(questions, sq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}
