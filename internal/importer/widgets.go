package importer

import (
	"strconv"
	"strings"

	"ferreteria/internal/normalizar"

	"github.com/shopspring/decimal"
)

// Per-cell cleaners for the import pipeline. Both are deliberately lenient:
// malformed numeric data degrades to zero so a dirty cell never aborts a
// batch import.

// LimpiarDinero strips the currency symbol and thousands separators and
// parses the remainder as a decimal. Null-like sentinels and parse failures
// yield zero.
func LimpiarDinero(valor string) decimal.Decimal {
	if normalizar.EsNulo(valor) {
		return decimal.Zero
	}
	limpio := strings.NewReplacer("$", "", ",", "").Replace(valor)
	limpio = strings.TrimSpace(limpio)
	d, err := decimal.NewFromString(limpio)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// LimpiarExistencia truncates at the first decimal point ("12.0" → "12") and
// parses the remainder as an integer. Null-like sentinels and parse failures
// yield zero.
func LimpiarExistencia(valor string) int {
	if normalizar.EsNulo(valor) {
		return 0
	}
	entero, _, _ := strings.Cut(valor, ".")
	n, err := strconv.Atoi(strings.TrimSpace(entero))
	if err != nil {
		return 0
	}
	return n
}
