// Package displaydate реализует конвертацию дат между отображаемым
// форматом DD/MM/YYYY и time.Time. Отображаемый формат — единственное
// представление дат, пересекающее границу системы.
package displaydate

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate возвращается, когда строка не является корректной датой DD/MM/YYYY.
var ErrInvalidDate = errors.New("invalid date")

// Layout — формат отображаемой даты.
const Layout = "02/01/2006"

// Parse разбирает строку в формате DD/MM/YYYY и возвращает дату в UTC.
//
// Строка разбивается по "/" ровно на три компонента: день, месяц, год.
// Несуществующие календарные даты (например 31/13/2022 или 30/02/2022)
// отклоняются, переполнение в следующий месяц не допускается.
func Parse(display string) (time.Time, error) {
	parts := strings.Split(display, "/")
	if len(parts) != 3 {
		return time.Time{}, ErrInvalidDate
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date нормализует переполнение (30/02 -> 01/03), поэтому
	// корректность проверяется обратным сравнением компонентов.
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// Format возвращает дату в отображаемом формате DD/MM/YYYY.
func Format(date time.Time) string {
	return date.Format(Layout)
}
