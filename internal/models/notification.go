package models

import "time"

// EmailNotificationLog запись журнала отправленных писем в удалённом хранилище.
// Metadata содержит только поля из списка разрешённых для данного типа.
type EmailNotificationLog struct {
	ID        int64
	Type      string
	UserEmail string
	UserName  string
	Delivered bool
	Metadata  map[string]any
	CreatedAt time.Time
}

// StoredNotification запись локального резервного журнала уведомлений.
type StoredNotification struct {
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}
