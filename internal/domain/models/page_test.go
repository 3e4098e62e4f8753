package models

import (
	"testing"
	"time"
)

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"anna", true},
		{"anna-nails-2026", true},
		{"a", true},
		{"", false},
		{"Anna", false},
		{"anna_nails", false},
		{"анна", false},
		{"gallery", false},
		{"api", false},
		{"health", false},
		{string(make([]byte, 64)), false},
	}

	for _, tt := range tests {
		if got := IsValidSlug(tt.slug); got != tt.want {
			t.Errorf("IsValidSlug(%q) = %v, want %v", tt.slug, got, tt.want)
		}
	}
}

func TestPageIsNewAccount(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		created time.Time
		want    bool
	}{
		{"created yesterday", now.Add(-24 * time.Hour), true},
		{"just inside the window", now.Add(-NewAccountGrace + time.Minute), true},
		{"exactly at the boundary", now.Add(-NewAccountGrace), false},
		{"old page", now.Add(-90 * 24 * time.Hour), false},
		{"zero created time", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Page{CreatedAt: tt.created}
			if got := p.IsNewAccount(now); got != tt.want {
				t.Errorf("IsNewAccount = %v, want %v", got, tt.want)
			}
		})
	}
}
