package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Banarasi Silk Saree", "banarasi-silk-saree"},
		{"  Kurta  Set  ", "kurta-set"},
		{"Anarkali (Festive Edition)!", "anarkali-festive-edition"},
		{"Lehenga & Choli", "lehenga-choli"},
		{"Dupatta 2.0", "dupatta-2-0"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.name), "Slugify(%q)", tc.name)
	}
}
