package render

import "testing"

func TestFormatDatetime(t *testing.T) {
	// Friday, June 15 2035 at 8pm.
	const input = "2035-06-15T20:00:00Z"

	cases := []struct {
		name string
		mode string
		want string
	}{
		{"full mode", "full", "Friday June, 15, 2035 at 8:00PM"},
		{"medium mode", "medium", "Fri 06, 15, 2035 8:00PM"},
		{"unknown mode falls back to medium", "short", "Fri 06, 15, 2035 8:00PM"},
		{"empty mode falls back to medium", "", "Fri 06, 15, 2035 8:00PM"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatDatetime(input, tc.mode)
			if got != tc.want {
				t.Errorf("FormatDatetime(%q, %q) = %q, want %q", input, tc.mode, got, tc.want)
			}
		})
	}
}

func TestFormatDatetime_AcceptedLayouts(t *testing.T) {
	inputs := []string{
		"2035-06-15T20:00:00Z",
		"2035-06-15T20:00:00",
		"2035-06-15 20:00:00",
		"06/15/2035, 20:00:00",
	}
	const want = "Fri 06, 15, 2035 8:00PM"

	for _, input := range inputs {
		if got := FormatDatetime(input, "medium"); got != want {
			t.Errorf("FormatDatetime(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFormatDatetime_UnparseablePassesThrough(t *testing.T) {
	if got := FormatDatetime("not a date", "full"); got != "not a date" {
		t.Errorf("FormatDatetime = %q, want input unchanged", got)
	}
}

func TestFormatDatetime_MorningTime(t *testing.T) {
	got := FormatDatetime("2035-06-15T09:05:00Z", "full")
	want := "Friday June, 15, 2035 at 9:05AM"
	if got != want {
		t.Errorf("FormatDatetime = %q, want %q", got, want)
	}
}
