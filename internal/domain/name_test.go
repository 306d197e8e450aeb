package domain

import "testing"

func TestComposeFullName(t *testing.T) {
	tests := []struct {
		given  string
		family string
		want   string
	}{
		{"Jane", "Doe", "Jane Doe"},
		{"", "Doe", "Doe"},
		{"Jane", "", "Jane"},
		{"", "", ""},
		{"  Jane", "Doe  ", "Jane Doe"},
		{"Jane", " Doe", "Jane  Doe"},
		{"Mary Ann", "van der Berg", "Mary Ann van der Berg"},
		{"Jane\n", "", "Jane"},
	}

	for _, tt := range tests {
		if got := ComposeFullName(tt.given, tt.family); got != tt.want {
			t.Errorf("ComposeFullName(%q, %q) = %q, want %q", tt.given, tt.family, got, tt.want)
		}
	}
}
