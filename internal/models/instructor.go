// Package models содержит доменную модель тренера,
// включающую данные учётной записи и хэш пароля.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// Instructor представляет зарегистрированного тренера.
type Instructor struct {
	UID          string    // Уникальный идентификатор тренера
	Username     string    // Имя пользователя (уникальное)
	Email        string    // Электронная почта
	PasswordHash string    // Хэш пароля
	CreatedAt    time.Time // Дата регистрации
}
