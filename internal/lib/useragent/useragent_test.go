package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/course-portal/internal/models"
)

func TestDeviceType(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want string
	}{
		{
			name: "iphone",
			ua:   "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148",
			want: models.DeviceMobile,
		},
		{
			name: "android tablet",
			ua:   "Mozilla/5.0 (Linux; Android 13; Tablet SM-X200) AppleWebKit/537.36",
			want: models.DeviceTablet,
		},
		{
			name: "mobile wins over tablet",
			ua:   "Tablet Mobile Safari",
			want: models.DeviceMobile,
		},
		{
			name: "desktop",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0",
			want: models.DeviceDesktop,
		},
		{
			name: "empty",
			ua:   "",
			want: models.DeviceDesktop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeviceType(tt.ua))
		})
	}
}
