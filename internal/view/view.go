// Package view вычисляет, что показывать пользователю: текст статуса
// подписки, кнопку покупки, доступ к платным материалам и защищённым
// страницам. Функции пакета чистые и не обращаются к хранилищам.
package view

import (
	"fmt"
	"time"

	"github.com/magabrotheeeer/course-portal/internal/lib/plan"
	"github.com/magabrotheeeer/course-portal/internal/models"
	"github.com/magabrotheeeer/course-portal/internal/services/subscription"
)

// CSS-классы статуса.
const (
	ClassFree         = "subscription-status free"
	ClassExpired      = "subscription-status expired"
	ClassExpiringSoon = "subscription-status expiring-soon"
	ClassActive       = "subscription-status active"
)

// dateLayout формат дат для пользователя, dd/mm/yyyy.
const dateLayout = "02/01/2006"

// Status то, что показывается в блоке подписки.
type Status struct {
	State         subscription.State `json:"state"`
	StatusLabel   string             `json:"status_label"`
	StatusClass   string             `json:"status_class"`
	ExpiryLabel   string             `json:"expiry_label"`
	CTALabel      string             `json:"cta_label,omitempty"`
	ShowPurchase  bool               `json:"show_purchase"`
	AccessGranted bool               `json:"access_granted"`
	DaysRemaining int                `json:"days_remaining"`
}

// Display строит блок подписки для сессии. Администратор получает полный
// доступ независимо от подписки, кнопка покупки для него скрыта.
func Display(sess models.Session, now time.Time) Status {
	st := subscription.Resolve(sess.Subscription, sess.Admin, now)
	out := Status{
		State:         st.State,
		AccessGranted: st.HasAccess(),
		DaysRemaining: st.DaysRemaining,
		ShowPurchase:  true,
	}

	var title string
	if sess.Subscription != nil {
		title = plan.Title(sess.Subscription.Plan)
	}
	expiry := st.ExpiryDate.Format(dateLayout)

	switch st.State {
	case subscription.AdminAccess:
		out.StatusLabel = "Admin Access - Full Access"
		out.StatusClass = ClassActive
		out.ExpiryLabel = "Administrator - All premium content unlocked"
		out.ShowPurchase = false
	case subscription.NoSubscription:
		out.StatusLabel = "No Subscription"
		out.StatusClass = ClassFree
		out.ExpiryLabel = "Subscribe to access all courses"
		out.CTALabel = "Subscribe Now"
	case subscription.Expired:
		out.StatusLabel = "Subscription Expired"
		out.StatusClass = ClassExpired
		out.ExpiryLabel = "Expired on " + expiry
		out.CTALabel = "Renew Now"
	case subscription.ExpiringSoon:
		out.StatusLabel = title + " - Expiring Soon"
		out.StatusClass = ClassExpiringSoon
		out.ExpiryLabel = fmt.Sprintf("%d days remaining (Expires: %s)", st.DaysRemaining, expiry)
		out.CTALabel = "Renew Subscription"
	default:
		out.StatusLabel = title + " - Active"
		out.StatusClass = ClassActive
		out.ExpiryLabel = fmt.Sprintf("%d days remaining (Expires: %s)", st.DaysRemaining, expiry)
		out.CTALabel = "Manage Subscription"
	}
	return out
}

// Page страница сайта.
type Page string

// Страницы сайта.
const (
	PageHome         Page = "home"
	PageLogin        Page = "login"
	PageRegister     Page = "register"
	PageLearning     Page = "learning"
	PageSubscription Page = "subscription"
)

// LoginPath куда отправляется гость со защищённой страницы.
const LoginPath = "/login"

var protected = map[Page]bool{
	PageLearning:     true,
	PageSubscription: true,
}

// Protected сообщает, требует ли страница входа.
func Protected(p Page) bool {
	return protected[p]
}

// Decision результат проверки доступа к странице.
type Decision struct {
	Render   bool   `json:"render"`
	Redirect string `json:"redirect,omitempty"`
}

// Access решает, показывать ли страницу. sess равен nil, если пользователь
// не вошёл. Платный контент внутри страницы регулирует Display.
func Access(p Page, sess *models.Session) Decision {
	if Protected(p) && sess == nil {
		return Decision{Redirect: LoginPath}
	}
	return Decision{Render: true}
}

// Profile сессия в том виде, в каком её получает клиент.
type Profile struct {
	User         models.SessionUser   `json:"user"`
	Subscription *models.Subscription `json:"subscription,omitempty"`
	Admin        bool                 `json:"admin"`
	Degraded     bool                 `json:"degraded,omitempty"`
	Status       Status               `json:"status"`
}

// NewProfile собирает Profile из сессии.
func NewProfile(sess models.Session, now time.Time) Profile {
	return Profile{
		User:         sess.User,
		Subscription: sess.Subscription,
		Admin:        sess.Admin,
		Degraded:     sess.Degraded,
		Status:       Display(sess, now),
	}
}
