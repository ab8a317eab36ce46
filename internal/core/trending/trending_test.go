package trending

import "testing"

func TestValidCategory(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		if !ValidCategory(string(c)) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}
	for _, bad := range []string{"", "rust", "All", "python "} {
		if ValidCategory(bad) {
			t.Errorf("ValidCategory(%q) = true, want false", bad)
		}
	}
}

func TestValidPeriod(t *testing.T) {
	t.Parallel()

	for _, p := range Periods() {
		if !ValidPeriod(string(p)) {
			t.Errorf("ValidPeriod(%q) = false, want true", p)
		}
	}
	for _, bad := range []string{"", "yearly", "Daily"} {
		if ValidPeriod(bad) {
			t.Errorf("ValidPeriod(%q) = true, want false", bad)
		}
	}
}

func TestValidDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{in: "2024-03-01", want: true},
		{in: "2024-13-01", want: false},
		{in: "2024-3-1", want: false},
		{in: "yesterday", want: false},
		{in: "", want: false},
	}
	for _, tc := range tests {
		if got := ValidDate(tc.in); got != tc.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
