package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/gym-client-manager/internal/models"
)

// RegisterInstructor сохраняет нового тренера в базу данных и возвращает его UID.
func (s *Storage) RegisterInstructor(ctx context.Context, instructor models.Instructor) (string, error) {
	const op = "storage.RegisterInstructor"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO instructors (username, email, password_hash)
			  VALUES ($1, $2, $3)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		instructor.Username, instructor.Email, instructor.PasswordHash).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetInstructorByUsername возвращает тренера по его username либо nil, если записи нет.
func (s *Storage) GetInstructorByUsername(ctx context.Context, username string) (*models.Instructor, error) {
	const op = "storage.GetInstructorByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, username, email, password_hash, created_at
			  FROM instructors
			  WHERE username = $1`
	i := &models.Instructor{}
	row := s.DB.QueryRowContext(ctx, query, username)

	if err := row.Scan(&i.UID, &i.Username, &i.Email, &i.PasswordHash, &i.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return i, nil
}
