// Package models содержит доменные структуры платформы курсов:
// пользователя, подписку, платёжную транзакцию, историю входов,
// журнал уведомлений и сессию, а также ошибки бизнес-уровня.
package models

import "time"

// Роли пользователя.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя платформы.
type User struct {
	ID           string    // Уникальный идентификатор пользователя (uuid)
	Name         string    // Полное имя
	Email        string    // Электронная почта (уникальная)
	Phone        string    // Телефон
	PasswordHash string    // bcrypt-хэш пароля, исходный пароль нигде не хранится
	Role         string    // Роль пользователя, admin или user
	CreatedAt    time.Time // Дата регистрации
}

// IsAdmin сообщает, есть ли у пользователя права администратора.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Типы устройств для истории входов.
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
)

// LoginHistory запись об успешном входе пользователя.
type LoginHistory struct {
	ID         int64
	UserID     string
	UserAgent  string
	DeviceType string
	CreatedAt  time.Time
}
