package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/gym-client-manager/internal/lib/displaydate"
	"github.com/magabrotheeeer/gym-client-manager/internal/models"
)

// В базе даты хранятся колонками типа DATE; в отображаемый формат DD/MM/YYYY
// они конвертируются на границе хранилища, так что остальной код видит
// только строки в отображаемом виде.

// CreateClient вставляет новую запись клиента и возвращает её ID.
func (s *Storage) CreateClient(ctx context.Context, entry models.Client) (int, error) {
	const op = "storage.CreateClient"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	startDate, err := displaydate.Parse(entry.StartDate)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	finishDate, err := displaydate.Parse(entry.FinishDate)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO clients (name, instructor_uid, payment_id, start_date,
			      finish_date, notification)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int
	err = s.DB.QueryRowContext(ctx, query,
		entry.Name, entry.InstructorUID, entry.PaymentID, startDate, finishDate,
		entry.Notification).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// FindClientByName возвращает клиента по имени либо nil, если записи нет.
func (s *Storage) FindClientByName(ctx context.Context, name string) (*models.Client, error) {
	const op = "storage.FindClientByName"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, instructor_uid, payment_id, start_date, finish_date, notification
			  FROM clients WHERE name = $1`
	row := s.DB.QueryRowContext(ctx, query, name)

	result, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FindClientByID возвращает клиента по ID либо nil, если записи нет.
func (s *Storage) FindClientByID(ctx context.Context, id int) (*models.Client, error) {
	const op = "storage.FindClientByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, instructor_uid, payment_id, start_date, finish_date, notification
			  FROM clients WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	result, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateClient обновляет данные клиента по его ID и возвращает количество изменённых строк.
func (s *Storage) UpdateClient(ctx context.Context, entry models.Client, id int) (int, error) {
	const op = "storage.UpdateClient"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	startDate, err := displaydate.Parse(entry.StartDate)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	finishDate, err := displaydate.Parse(entry.FinishDate)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE clients
			  SET name = $1, payment_id = $2, start_date = $3, finish_date = $4
			  WHERE id = $5`
	result, err := s.DB.ExecContext(ctx, query,
		entry.Name, entry.PaymentID, startDate, finishDate, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveClient удаляет клиента по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveClient(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveClient"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM clients WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListClientsByInstructor возвращает всех клиентов тренера в порядке хранения.
func (s *Storage) ListClientsByInstructor(ctx context.Context, instructorUID string) ([]*models.Client, error) {
	const op = "storage.ListClientsByInstructor"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, instructor_uid, payment_id, start_date, finish_date, notification
			  FROM clients
			  WHERE instructor_uid = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, instructorUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Client
	for rows.Next() {
		item, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FindClientsExpiringSoon находит клиентов, абонемент которых заканчивается
// в пределах порога уведомления, вместе с контактами тренера.
func (s *Storage) FindClientsExpiringSoon(ctx context.Context, thresholdDays int) ([]*models.ExpiringClientInfo, error) {
	const op = "storage.FindClientsExpiringSoon"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT
		          i.email,
			      i.username,
			      c.name,
			      c.finish_date,
			      (c.finish_date - CURRENT_DATE) AS days_left
			  FROM clients c
		      JOIN instructors i ON c.instructor_uid = i.uid
		      WHERE c.finish_date >= CURRENT_DATE
		        AND c.finish_date < CURRENT_DATE + make_interval(days => $1)`
	rows, err := s.DB.QueryContext(ctx, query, thresholdDays)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ExpiringClientInfo
	for rows.Next() {
		var ci models.ExpiringClientInfo
		var finishDate time.Time
		if err = rows.Scan(&ci.InstructorEmail, &ci.InstructorUsername, &ci.ClientName,
			&finishDate, &ci.DaysLeft); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ci.FinishDate = displaydate.Format(finishDate)
		result = append(result, &ci)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// rowScanner объединяет *sql.Row и *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*models.Client, error) {
	var item models.Client
	var startDate, finishDate time.Time
	if err := row.Scan(&item.ID, &item.Name, &item.InstructorUID, &item.PaymentID,
		&startDate, &finishDate, &item.Notification); err != nil {
		return nil, err
	}
	item.StartDate = displaydate.Format(startDate)
	item.FinishDate = displaydate.Format(finishDate)
	return &item, nil
}
