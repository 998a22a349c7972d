package utils

import "testing"

func TestNormalizeSpace(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Maria   da  Silva ", "Maria da Silva"},
		{"um\tdois\n três", "um dois três"},
		{"   ", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeSpace(tc.in); got != tc.want {
			t.Fatalf("NormalizeSpace(%q) = %q, esperava %q", tc.in, got, tc.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"maria@exemplo.com", "a.b@sub.dominio.br", " maria@exemplo.com "}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Fatalf("%q deveria ser válido", e)
		}
	}
	invalid := []string{"", "maria", "maria@", "@exemplo.com", "maria@exemplo", "ma ria@exemplo.com"}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Fatalf("%q não deveria ser válido", e)
		}
	}
}
