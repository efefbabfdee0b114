package inventory

import (
	"fmt"
	"regexp"
	"strconv"
)

// Prefijos de número de acta por tipo de movimiento.
const (
	PrefixEntrada = "ACT"
	PrefixSalida  = "SAL"
)

// ActaYearPrefix devuelve "PREFIX-YEAR-".
func ActaYearPrefix(prefix string, year int) string {
	return fmt.Sprintf("%s-%d-", prefix, year)
}

// ActaLikePattern patrón LIKE para buscar actas de un año.
func ActaLikePattern(prefix string, year int) string {
	return ActaYearPrefix(prefix, year) + "%"
}

// NextActaNumber calcula la sugerencia a partir del mayor número de acta del año (last, vacío si no hay).
// El sufijo numérico se incrementa y se rellena a 3 dígitos. Es solo una sugerencia: la unicidad la
// garantiza el almacén al insertar.
func NextActaNumber(prefix string, year int, last string) string {
	next := 1
	if last != "" {
		re := regexp.MustCompile(regexp.QuoteMeta(prefix) + `-\d+-(\d+)`)
		if m := re.FindStringSubmatch(last); len(m) == 2 {
			if n, err := strconv.Atoi(m[1]); err == nil {
				next = n + 1
			}
		}
	}
	return fmt.Sprintf("%s%03d", ActaYearPrefix(prefix, year), next)
}
