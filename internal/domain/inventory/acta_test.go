package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextActaNumber(t *testing.T) {
	assert.Equal(t, "ACT-2024-003", NextActaNumber(PrefixEntrada, 2024, "ACT-2024-002"))
	assert.Equal(t, "ACT-2024-001", NextActaNumber(PrefixEntrada, 2024, ""))
	assert.Equal(t, "SAL-2025-011", NextActaNumber(PrefixSalida, 2025, "SAL-2025-010"))
	assert.Equal(t, "ACT-2024-1000", NextActaNumber(PrefixEntrada, 2024, "ACT-2024-999"))
}

func TestNextActaNumber_SufijoIlegibleEmpiezaEnUno(t *testing.T) {
	assert.Equal(t, "ACT-2024-001", NextActaNumber(PrefixEntrada, 2024, "ACT-2024-manual"))
}

func TestActaLikePattern(t *testing.T) {
	assert.Equal(t, "SAL-2024-%", ActaLikePattern(PrefixSalida, 2024))
}
