package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/location"
)

func TestValid_UbicacionesCorrectas(t *testing.T) {
	cases := []struct{ rack, bin string }{
		{"A1", "01"},
		{"B12", "99"},
		{"z3", "00"},
	}
	for _, c := range cases {
		assert.True(t, location.Valid(c.rack, c.bin), "rack=%q bin=%q debe ser válido", c.rack, c.bin)
	}
}

func TestValid_UbicacionesIncorrectas(t *testing.T) {
	cases := []struct {
		rack, bin string
		motivo    string
	}{
		{"", "01", "rack vacío"},
		{"A1", "", "bin vacío"},
		{"1A", "01", "rack debe empezar por letra"},
		{"A", "01", "rack sin dígitos"},
		{"AA", "01", "rack con segunda letra"},
		{"A1", "1", "bin de un dígito"},
		{"A1", "001", "bin de tres dígitos"},
		{"A1", "x1", "bin no numérico"},
	}
	for _, c := range cases {
		assert.False(t, location.Valid(c.rack, c.bin), c.motivo)
	}
}

func TestEqual_CaseInsensitive(t *testing.T) {
	assert.True(t, location.Equal("A1", "01", "a1", "01"))
	assert.True(t, location.Equal("b2", "05", "B2", "05"))
	assert.False(t, location.Equal("A1", "01", "A1", "02"))
	assert.False(t, location.Equal("A1", "01", "A2", "01"))
}

func TestCompose(t *testing.T) {
	assert.Equal(t, "A1-01", location.Compose("A1", "01"))
}
