package logger

import "testing"

func TestRedactEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"normal address", "john.doe@example.com", "jo***@example.com"},
		{"short local part", "ab@example.com", "***@example.com"},
		{"not an email", "not-an-email", "***@***"},
		{"empty", "", "***@***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RedactEmail(tt.email); got != tt.want {
				t.Errorf("RedactEmail(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}

func TestRedactPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"international", "+263 77 123 4567", "***67"},
		{"short", "12", "***"},
		{"empty", "", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RedactPhone(tt.phone); got != tt.want {
				t.Errorf("RedactPhone(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}
