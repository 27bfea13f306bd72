package utils

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestNextValentine(t *testing.T) {
	bucharest, err := time.LoadLocation("Europe/Bucharest")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	tests := []struct {
		name     string
		now      time.Time
		target   string
		daysLeft int
	}{
		{
			name:     "day before valentine",
			now:      time.Date(2026, time.February, 13, 18, 0, 0, 0, time.UTC),
			target:   "2026-02-14",
			daysLeft: 1,
		},
		{
			name:     "valentine itself",
			now:      time.Date(2026, time.February, 14, 23, 59, 0, 0, time.UTC),
			target:   "2026-02-14",
			daysLeft: 0,
		},
		{
			name:     "day after valentine rolls over",
			now:      time.Date(2026, time.February, 15, 0, 1, 0, 0, time.UTC),
			target:   "2027-02-14",
			daysLeft: 364,
		},
		{
			name:     "new year's day",
			now:      time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC),
			target:   "2026-02-14",
			daysLeft: 44,
		},
		{
			name:     "autumn before a leap year",
			now:      time.Date(2027, time.October, 18, 9, 0, 0, 0, time.UTC),
			target:   "2028-02-14",
			daysLeft: 119,
		},
		{
			name:     "across a DST change",
			now:      time.Date(2026, time.October, 18, 9, 0, 0, 0, bucharest),
			target:   "2027-02-14",
			daysLeft: 119,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, daysLeft := NextValentine(tt.now)
			if got := target.Format(time.DateOnly); got != tt.target {
				t.Errorf("For %v, expected target %s but got %s", tt.now, tt.target, got)
			}
			if daysLeft != tt.daysLeft {
				t.Errorf("For %v, expected %d days left but got %d", tt.now, tt.daysLeft, daysLeft)
			}
		})
	}
}

func TestClientAddress(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trustProxy bool
		expected   string
	}{
		{
			name:       "ipv4 with port",
			remoteAddr: "192.168.1.20:53211",
			expected:   "192.168.1.20",
		},
		{
			name:       "ipv6 with port",
			remoteAddr: "[::1]:8080",
			expected:   "::1",
		},
		{
			name:       "address without port",
			remoteAddr: "10.1.2.3",
			expected:   "10.1.2.3",
		},
		{
			name:       "empty address",
			remoteAddr: "",
			expected:   "",
		},
		{
			name:       "forwarded header ignored without trust",
			remoteAddr: "10.0.0.1:1234",
			forwarded:  "203.0.113.9",
			expected:   "10.0.0.1",
		},
		{
			name:       "first forwarded entry when trusted",
			remoteAddr: "10.0.0.1:1234",
			forwarded:  "203.0.113.9, 10.0.0.1",
			trustProxy: true,
			expected:   "203.0.113.9",
		},
		{
			name:       "trusted but no header",
			remoteAddr: "10.0.0.1:1234",
			trustProxy: true,
			expected:   "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/valentine-response", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			if got := ClientAddress(r, tt.trustProxy); got != tt.expected {
				t.Errorf("For %q, expected %q but got %q", tt.remoteAddr, tt.expected, got)
			}
		})
	}
}
