package utils

import "testing"

func TestHumanizeGarmentName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"mens_tshirt", "Mens Tshirt"},
		{"women_polo_shirt", "Women Polo Shirt"},
		{"kids hoodie", "Kids Hoodie"},
		{"", ""},
	}
	for _, c := range cases {
		if got := HumanizeGarmentName(c.in); got != c.want {
			t.Errorf("HumanizeGarmentName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
