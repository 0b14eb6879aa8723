// Package plan описывает тарифные планы подписки и правила расчёта
// даты окончания подписки по ключу плана.
package plan

import (
	"strings"
	"time"
)

// Ключи тарифных планов.
const (
	Monthly   = "monthly"
	Quarterly = "quarterly"
	Annual    = "annual"
	Yearly    = "yearly"
)

// duration задаёт календарный сдвиг плана в годах и месяцах.
type duration struct {
	years  int
	months int
}

var durations = map[string]duration{
	Monthly:   {months: 1},
	Quarterly: {months: 3},
	Annual:    {years: 1},
	Yearly:    {years: 1},
}

// Normalize приводит ключ плана к нижнему регистру без пробелов по краям.
func Normalize(planKey string) string {
	return strings.ToLower(strings.TrimSpace(planKey))
}

// Known сообщает, есть ли план в таблице длительностей.
func Known(planKey string) bool {
	_, ok := durations[Normalize(planKey)]
	return ok
}

// ExpiryDate возвращает дату окончания подписки, начавшейся в start.
//
// monthly: +1 месяц, quarterly: +3 месяца, annual и yearly: +1 год.
// Неизвестный ключ считается месячным планом. Регистр ключа не важен.
// Сдвиг календарный, переполнение дня месяца нормализуется так же,
// как в time.AddDate (31 января + 1 месяц = 2 или 3 марта).
func ExpiryDate(start time.Time, planKey string) time.Time {
	d, ok := durations[Normalize(planKey)]
	if !ok {
		d = durations[Monthly]
	}
	return start.AddDate(d.years, d.months, 0)
}

// DurationDays возвращает длительность плана в сутках, начиная со start.
func DurationDays(start time.Time, planKey string) int {
	return int(ExpiryDate(start, planKey).Sub(start).Hours() / 24)
}

// Title возвращает название плана с заглавной буквы, например "Quarterly".
func Title(planKey string) string {
	p := Normalize(planKey)
	if p == "" {
		return ""
	}
	return strings.ToUpper(p[:1]) + p[1:]
}
