package subscription

import (
	"math"
	"time"

	"github.com/magabrotheeeer/course-portal/internal/models"
)

// State состояние доступа пользователя, выведенное из дат подписки.
type State string

// Состояния доступа.
const (
	NoSubscription State = "no_subscription"
	Expired        State = "expired"
	ExpiringSoon   State = "expiring_soon"
	Active         State = "active"
	// AdminAccess псевдо-состояние администратора, не зависит от подписки.
	AdminAccess State = "admin_access"
)

// ExpiringSoonDays граница "скоро истекает", включительно.
const ExpiringSoonDays = 7

// Status результат вычисления состояния подписки.
type Status struct {
	State         State
	DaysRemaining int
	ExpiryDate    time.Time
}

// HasAccess сообщает, открыт ли доступ к платному контенту.
// ExpiringSoon тоже даёт доступ.
func (s Status) HasAccess() bool {
	switch s.State {
	case Active, ExpiringSoon, AdminAccess:
		return true
	default:
		return false
	}
}

// DaysRemaining возвращает ceil((expiry - now) / 1 день).
func DaysRemaining(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// Derive вычисляет состояние подписки только по датам.
// Сохранённое поле Status не учитывается.
//
// daysRemaining < 0: Expired, 0..7: ExpiringSoon, больше 7: Active.
func Derive(sub *models.Subscription, now time.Time) Status {
	if sub == nil || sub.ExpiryDate.IsZero() {
		return Status{State: NoSubscription}
	}
	days := DaysRemaining(sub.ExpiryDate, now)
	st := Status{DaysRemaining: days, ExpiryDate: sub.ExpiryDate}
	switch {
	case days < 0:
		st.State = Expired
	case days <= ExpiringSoonDays:
		st.State = ExpiringSoon
	default:
		st.State = Active
	}
	return st
}

// Resolve учитывает флаг администратора поверх Derive.
func Resolve(sub *models.Subscription, admin bool, now time.Time) Status {
	if admin {
		st := Derive(sub, now)
		st.State = AdminAccess
		return st
	}
	return Derive(sub, now)
}
