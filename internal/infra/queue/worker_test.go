package queue

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type transientErr struct{ msg string }

func (e *transientErr) Error() string   { return e.msg }
func (e *transientErr) Retryable() bool { return true }

type permanentErr struct{ msg string }

func (e *permanentErr) Error() string   { return e.msg }
func (e *permanentErr) Retryable() bool { return false }

// Falha transitória volta pra fila; payload podre vai pra DLQ. A distinção
// vem do contrato Retryable, inclusive através de wrapping.
func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(&transientErr{"store fora do ar"}))
	assert.True(t, isRetryable(fmt.Errorf("consumindo: %w", &transientErr{"timeout"})))

	assert.False(t, isRetryable(&permanentErr{"email inválido"}))
	assert.False(t, isRetryable(errors.New("erro sem contrato")))
	assert.False(t, isRetryable(nil))
}
