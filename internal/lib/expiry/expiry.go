// Package expiry содержит расчёт даты окончания абонемента по периоду оплаты
// и оценку количества оставшихся дней для флага уведомления.
package expiry

import (
	"errors"
	"time"
)

// Метки периодов оплаты — фиксированный набор из четырёх значений,
// совпадающий со справочной таблицей payments.
const (
	Mensal     = "Mensal"
	Trimestral = "Trimestral"
	Semestral  = "Semestral"
	Anual      = "Anual"
)

// ErrUnknownPeriod возвращается для метки вне известного набора периодов.
var ErrUnknownPeriod = errors.New("unknown payment period")

// NotificationThreshold — порог в днях, ниже которого клиент считается
// "скоро истекающим" и помечается флагом уведомления.
const NotificationThreshold = 7

// PeriodDays возвращает смещение в днях для метки периода оплаты.
func PeriodDays(period string) (int, error) {
	switch period {
	case Mensal:
		return 30, nil
	case Trimestral:
		return 90, nil
	case Semestral:
		return 180, nil
	case Anual:
		return 365, nil
	default:
		return 0, ErrUnknownPeriod
	}
}

// ExpirationDate прибавляет к дате начала смещение периода оплаты.
// Переход через границу месяца и года обрабатывается стандартной
// календарной арифметикой time.Time.
func ExpirationDate(period string, start time.Time) (time.Time, error) {
	days, err := PeriodDays(period)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, days), nil
}

// DaysLeft возвращает знаковую разницу в целых днях между датой окончания
// и текущим днём. Отрицательное значение означает, что абонемент уже истёк.
// Дробная часть отбрасывается в сторону нуля; обе даты выровнены на полночь,
// поэтому на границе порога уведомления это не сказывается.
func DaysLeft(finish, now time.Time) int {
	return int(finish.Sub(now).Hours() / 24)
}

// ShouldNotify возвращает true, если по количеству оставшихся дней
// клиенту пора напомнить о продлении.
func ShouldNotify(daysLeft int) bool {
	return daysLeft < NotificationThreshold
}
