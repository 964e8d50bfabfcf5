package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/oleo-stock/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Roma", "roma"},
		{"Bodega Centrale", "bodega-centrale"},
		{"Magazzino  Nº 2!", "magazzino-n-2"},
		{"Sant'Andrea", "sant-andrea"},
		{"Frantoio São João", "frantoio-sao-joao"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slug.Make(tc.in), "Make(%q)", tc.in)
	}
}
