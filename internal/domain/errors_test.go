package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsPorCategoria(t *testing.T) {
	err := fmt.Errorf("crear lote: %w", Conflict("El número de lote ya existe"))

	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrNotFound)

	msg, ok := MessageOf(err)
	assert.True(t, ok)
	assert.Equal(t, "El número de lote ya existe", msg)
}

func TestError_CausaEncadenada(t *testing.T) {
	cause := errors.New("401 desde el proveedor")
	err := InvalidToken("Token inválido o expirado", cause)

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "401 desde el proveedor")
}

func TestMessageOf_ErrorPlano(t *testing.T) {
	_, ok := MessageOf(errors.New("x"))
	assert.False(t, ok)
}
