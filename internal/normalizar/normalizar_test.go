package normalizar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClave(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Tornillería", "tornilleria"},
		{"  PINTURA  ", "pintura"},
		{"Eléctrico", "electrico"},
		{"Ñandú", "nandu"},
		{"None", ""},
		{"none", ""},
		{"", ""},
		{"Clavos 2\"", "clavos 2\""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, Clave(c.entrada), "entrada %q", c.entrada)
	}
}

func TestClaveIgualaAcentosYMayusculas(t *testing.T) {
	// Dos escrituras distintas del mismo nombre deben producir la misma clave.
	assert.Equal(t, Clave("Tornillería"), Clave("TORNILLERIA"))
	assert.Equal(t, Clave("Eléctrico "), Clave("electrico"))
}

func TestEsNulo(t *testing.T) {
	assert.True(t, EsNulo(""))
	assert.True(t, EsNulo("   "))
	assert.True(t, EsNulo("None"))
	assert.True(t, EsNulo("nan"))
	assert.True(t, EsNulo("NaN"))
	assert.False(t, EsNulo("Truper"))
	assert.False(t, EsNulo("0"))
}
