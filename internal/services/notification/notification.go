// Package notification отправляет письма о регистрации, входе и покупке
// подписки и ведёт локальный журнал отправленных уведомлений.
//
// Каждый вид уведомления формирует только разрешённый набор полей.
// Пароль и CVV в уведомлениях не участвуют, номер карты сокращается
// до последних четырёх цифр.
package notification

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/magabrotheeeer/course-portal/internal/lib/plan"
	"github.com/magabrotheeeer/course-portal/internal/models"
)

// Kind вид уведомления.
type Kind string

// Виды уведомлений.
const (
	KindRegistration        Kind = "registration"
	KindLogin               Kind = "login"
	KindSubscription        Kind = "subscription"
	KindPaymentConfirmation Kind = "payment_confirmation"
)

// Audience кому адресовано письмо.
type Audience int

const (
	// AudienceAdmin письмо уходит администратору площадки.
	AudienceAdmin Audience = iota
	// AudienceUser письмо уходит самому пользователю.
	AudienceUser
)

// allowedFields поля, которые вид уведомления может передать наружу.
var allowedFields = map[Kind][]string{
	KindRegistration: {"name", "email", "phone", "registrationDate"},
	KindLogin:        {"name", "email", "phone", "subscriptionSummary"},
	KindSubscription: {
		"name", "email", "phone", "plan", "amount", "startDate", "expiryDate",
		"duration", "cardHolder", "cardLast4", "transactionId",
	},
	KindPaymentConfirmation: {"name", "email", "plan", "amount", "transactionId", "loginUrl"},
}

// AllowedFields возвращает разрешённые поля для вида уведомления.
func AllowedFields(kind Kind) []string {
	return append([]string(nil), allowedFields[kind]...)
}

// Notification уведомление одного из видов Registration, Login,
// Subscription, PaymentConfirmation.
type Notification interface {
	Kind() Kind
	Audience() Audience
	// User имя и e-mail пользователя, о котором уведомление.
	User() (name, email string)
	// Fields поля письма до фильтрации по списку разрешённых.
	Fields() map[string]any
	// Metadata поля для строки email_notifications.
	Metadata() map[string]any
}

// Sanitize оставляет в полях уведомления только разрешённые ключи.
func Sanitize(n Notification) map[string]any {
	fields := n.Fields()
	result := make(map[string]any, len(allowedFields[n.Kind()]))
	for _, key := range allowedFields[n.Kind()] {
		if v, ok := fields[key]; ok {
			result[key] = v
		}
	}
	return result
}

const dateLayout = time.RFC3339

// Registration уведомление администратору о новом пользователе.
type Registration struct {
	Name         string
	Email        string
	Phone        string
	RegisteredAt time.Time
}

func (Registration) Kind() Kind         { return KindRegistration }
func (Registration) Audience() Audience { return AudienceAdmin }

func (r Registration) User() (string, string) { return r.Name, r.Email }

func (r Registration) Fields() map[string]any {
	return map[string]any{
		"name":             r.Name,
		"email":            r.Email,
		"phone":            r.Phone,
		"registrationDate": r.RegisteredAt.UTC().Format(dateLayout),
	}
}

func (r Registration) Metadata() map[string]any {
	return map[string]any{"phone": r.Phone}
}

// Login уведомление администратору о входе пользователя.
type Login struct {
	Name         string
	Email        string
	Phone        string
	Subscription *models.Subscription
}

func (Login) Kind() Kind         { return KindLogin }
func (Login) Audience() Audience { return AudienceAdmin }

func (l Login) User() (string, string) { return l.Name, l.Email }

func (l Login) Fields() map[string]any {
	return map[string]any{
		"name":                l.Name,
		"email":               l.Email,
		"phone":               l.Phone,
		"subscriptionSummary": SubscriptionSummary(l.Subscription),
	}
}

func (l Login) Metadata() map[string]any {
	status := "none"
	if l.Subscription != nil {
		status = "active"
	}
	return map[string]any{"subscription_status": status}
}

// SubscriptionSummary краткое описание подписки для писем.
func SubscriptionSummary(sub *models.Subscription) string {
	if sub == nil {
		return "No active subscription"
	}
	return fmt.Sprintf("%s (expires %s)", plan.Title(sub.Plan), sub.ExpiryDate.Format("2006-01-02"))
}

// Subscription уведомление администратору о покупке подписки.
// CardNumber используется только для получения последних четырёх цифр.
type Subscription struct {
	Name          string
	Email         string
	Phone         string
	Plan          string
	Amount        float64
	Start         time.Time
	Expiry        time.Time
	CardHolder    string
	CardNumber    string
	TransactionID string
}

func (Subscription) Kind() Kind         { return KindSubscription }
func (Subscription) Audience() Audience { return AudienceAdmin }

func (s Subscription) User() (string, string) { return s.Name, s.Email }

func (s Subscription) Fields() map[string]any {
	return map[string]any{
		"name":          s.Name,
		"email":         s.Email,
		"phone":         s.Phone,
		"plan":          s.Plan,
		"amount":        s.Amount,
		"startDate":     s.Start.UTC().Format(dateLayout),
		"expiryDate":    s.Expiry.UTC().Format(dateLayout),
		"duration":      fmt.Sprintf("%d days", plan.DurationDays(s.Start, s.Plan)),
		"cardHolder":    s.CardHolder,
		"cardLast4":     CardLast4(s.CardNumber),
		"transactionId": s.TransactionID,
	}
}

func (s Subscription) Metadata() map[string]any {
	return map[string]any{
		"plan":           s.Plan,
		"amount":         s.Amount,
		"transaction_id": s.TransactionID,
	}
}

// PaymentConfirmation письмо пользователю об успешной оплате.
type PaymentConfirmation struct {
	Name          string
	Email         string
	Plan          string
	Amount        float64
	TransactionID string
	LoginURL      string
}

func (PaymentConfirmation) Kind() Kind         { return KindPaymentConfirmation }
func (PaymentConfirmation) Audience() Audience { return AudienceUser }

func (p PaymentConfirmation) User() (string, string) { return p.Name, p.Email }

func (p PaymentConfirmation) Fields() map[string]any {
	return map[string]any{
		"name":          p.Name,
		"email":         p.Email,
		"plan":          plan.Title(p.Plan),
		"amount":        FormatRupees(p.Amount),
		"transactionId": p.TransactionID,
		"loginUrl":      p.LoginURL,
	}
}

func (p PaymentConfirmation) Metadata() map[string]any {
	return map[string]any{
		"plan":           p.Plan,
		"amount":         p.Amount,
		"transaction_id": p.TransactionID,
	}
}

// CardLast4 возвращает последние четыре цифры номера карты без пробелов
// или "N/A", если номер не передан.
func CardLast4(number string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, number)
	if digits == "" {
		return "N/A"
	}
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// FormatRupees форматирует сумму в индийской записи: ₹1,23,456.50.
func FormatRupees(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	paise := int64(math.Round(amount * 100))
	whole := strconv.FormatInt(paise/100, 10)

	var grouped string
	if len(whole) <= 3 {
		grouped = whole
	} else {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		grouped = strings.Join(parts, ",") + "," + tail
	}

	if frac := paise % 100; frac != 0 {
		return fmt.Sprintf("%s₹%s.%02d", sign, grouped, frac)
	}
	return sign + "₹" + grouped
}
