// internal/catalog/slug_test.go

package catalog

import "testing"

func TestMakeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Shirts", "shirts"},
		{"Summer Dresses", "summer-dresses"},
		{"  Coats & Jackets!  ", "coats-jackets"},
		{"Déjà Vu", "d-j-vu"},
		{"---", "category"},
		{"", "category"},
	}
	for _, c := range cases {
		if got := MakeSlug(c.in); got != c.want {
			t.Errorf("MakeSlug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
