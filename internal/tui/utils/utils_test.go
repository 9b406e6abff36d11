package utils

import "testing"

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "Milk", 10, "Milk"},
		{"exact", "Milk", 4, "Milk"},
		{"cut", "Strawberries", 6, "Straw…"},
		{"wide runes", "牛乳牛乳", 5, "牛乳…"},
		{"one", "Bread", 1, "…"},
		{"zero", "Bread", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.in, tt.max); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5,0,3) = %d", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Clamp(-1,0,3) = %d", got)
	}
	if got := Clamp(2, 0, -1); got != 0 {
		t.Errorf("Clamp(2,0,-1) = %d", got)
	}
}
