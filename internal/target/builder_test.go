package target

import "testing"

func TestTrimRecipeLine(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"tab and newline", "cmd\t\n", "cmd\t"},
		{"newline only", "cmd\n", "cmd"},
		{"tab only", "cmd\t", "cmd"},
		{"neither", "cmd", "cmd"},
		{"double tab keeps inner one", "cmd\t\t\n", "cmd\t\t"},
		{"double newline keeps inner one", "cmd\n\n", "cmd\n"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := trimRecipeLine(tc.in); got != tc.want {
				t.Errorf("trimRecipeLine(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
