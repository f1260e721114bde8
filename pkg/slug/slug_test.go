package slug_test

import (
	"testing"

	"github.com/dmelo/catalog/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Électronique", "electronique"},
		{"Café au Lait", "cafe-au-lait"},
		{"Home & Garden", "home-garden"},
		{"  spaces   everywhere  ", "spaces-everywhere"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER CASE 123", "upper-case-123"},
		{"trailing!!!", "trailing"},
		{"---leading", "leading"},
		{"", ""},
		{"!!!", ""},
		{"über größe", "uber-gro-e"}, // ß has no NFD decomposition
	}

	for _, tc := range cases {
		if got := slug.Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
