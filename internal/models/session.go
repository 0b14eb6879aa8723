package models

import "time"

// SessionUser публичная часть пользователя, которая хранится в сессии.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Session снимок аутентифицированного пользователя вместе с его подпиской.
// Хранится в одном кеше, ключ — идентификатор сессии из токена.
type Session struct {
	ID           string        `json:"id"`
	User         SessionUser   `json:"user"`
	Subscription *Subscription `json:"subscription,omitempty"`
	Admin        bool          `json:"admin"`
	LoginTime    time.Time     `json:"login_time"`
	Degraded     bool          `json:"degraded,omitempty"`
}
