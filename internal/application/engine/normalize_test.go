package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stocktrack-api/internal/application/engine"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"tornillo", "TORNILLO"},
		{"  Tornillo M3  ", "TORNILLO M3"},
		{"BODEGA NORTE", "BODEGA NORTE"},
		{"cañería", "CAÑERÍA"}, // mayúsculas con tildes y eñes, no solo ASCII
		{"   ", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, engine.NormalizeName(c.in), "entrada %q", c.in)
	}
}

func TestNormalizeName_Idempotente(t *testing.T) {
	once := engine.NormalizeName("  tornillo m3 ")
	assert.Equal(t, once, engine.NormalizeName(once))
}
