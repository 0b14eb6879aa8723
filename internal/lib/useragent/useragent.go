// Package useragent определяет класс устройства по строке User-Agent.
package useragent

import (
	"strings"

	"github.com/magabrotheeeer/course-portal/internal/models"
)

// DeviceType возвращает mobile, tablet или desktop.
// Признак mobile проверяется первым, поэтому "Mobile Safari" на планшете
// считается мобильным устройством.
func DeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mobile"):
		return models.DeviceMobile
	case strings.Contains(ua, "tablet"):
		return models.DeviceTablet
	default:
		return models.DeviceDesktop
	}
}
