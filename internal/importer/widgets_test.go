package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLimpiarDinero(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"$1,250.50", "1250.5"},
		{"$ 89.90", "89.9"},
		{"1250", "1250"},
		{"", "0"},
		{"None", "0"},
		{"nan", "0"},
		{"precio pendiente", "0"},
		{"$-10.00", "-10"},
	}
	for _, c := range casos {
		esperado, _ := decimal.NewFromString(c.esperado)
		assert.True(t, esperado.Equal(LimpiarDinero(c.entrada)), "entrada %q", c.entrada)
	}
}

func TestLimpiarExistencia(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado int
	}{
		{"12", 12},
		{"12.0", 12},
		{"12.9", 12}, // trunca, no redondea
		{" 7 ", 7},
		{"", 0},
		{"None", 0},
		{"nan", 0},
		{"agotado", 0},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, LimpiarExistencia(c.entrada), "entrada %q", c.entrada)
	}
}
