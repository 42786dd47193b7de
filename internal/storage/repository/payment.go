package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Таблица payments — справочник меток периодов оплаты (Mensal, Trimestral,
// Semestral, Anual), засеивается миграцией и этим кодом не изменяется.

// FindPaymentID возвращает ID периода оплаты по его метке.
// Второе значение false означает, что метка в справочнике не найдена.
func (s *Storage) FindPaymentID(ctx context.Context, period string) (int, bool, error) {
	const op = "storage.FindPaymentID"
	select {
	case <-ctx.Done():
		return 0, false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id FROM payments WHERE period = $1`
	var id int
	err := s.DB.QueryRowContext(ctx, query, period).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%s: %w", op, err)
	}
	return id, true, nil
}

// FindPaymentLabel возвращает метку периода оплаты по его ID.
// Второе значение false означает, что записи с таким ID нет.
func (s *Storage) FindPaymentLabel(ctx context.Context, id int) (string, bool, error) {
	const op = "storage.FindPaymentLabel"
	select {
	case <-ctx.Done():
		return "", false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT period FROM payments WHERE id = $1`
	var period string
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&period)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return period, true, nil
}
