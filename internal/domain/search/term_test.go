package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/search"
)

func TestParse_TerminoVacio(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t"} {
		got := search.Parse(raw)
		assert.True(t, got.Empty, "término %q debe interpretarse como vacío", raw)
	}
}

func TestParse_RackYBinExactos(t *testing.T) {
	got := search.Parse("rack:A1-bin:01")
	assert.Equal(t, search.ExactRackBin, got.Kind)
	assert.Equal(t, "A1", got.Rack)
	assert.Equal(t, "01", got.Bin)
}

func TestParse_RackYBin_CaseInsensitiveEnMarcadores(t *testing.T) {
	// Los marcadores se reconocen en cualquier combinación de mayúsculas;
	// los valores conservan su forma original (la comparación la hace el store).
	got := search.Parse("RACK:a1-BIN:02")
	assert.Equal(t, search.ExactRackBin, got.Kind)
	assert.Equal(t, "a1", got.Rack)
	assert.Equal(t, "02", got.Bin)
}

func TestParse_SoloRack_EsPrefijo(t *testing.T) {
	got := search.Parse("rack:B")
	assert.Equal(t, search.RackPrefix, got.Kind)
	assert.Equal(t, "B", got.Rack)
	assert.Empty(t, got.Bin)
}

func TestParse_TextoLibre(t *testing.T) {
	cases := []string{"TRIM-001", "a1-01", "01", "tornillo"}
	for _, raw := range cases {
		got := search.Parse(raw)
		assert.Equal(t, search.FreeText, got.Kind, "término %q debe ser texto libre", raw)
		assert.Equal(t, raw, got.Text)
	}
}

func TestParse_MarcadoresIncompletos_CaenATextoLibre(t *testing.T) {
	// "rack:" sin valor no es un filtro utilizable.
	got := search.Parse("rack:")
	assert.Equal(t, search.FreeText, got.Kind)

	// bin: sin rack: no activa la gramática de ubicación.
	got = search.Parse("bin:01")
	assert.Equal(t, search.FreeText, got.Kind)

	// rack con bin vacío degrada a prefijo de rack sobre lo parseable.
	got = search.Parse("rack:A1-bin:")
	assert.NotEqual(t, search.ExactRackBin, got.Kind)
}
