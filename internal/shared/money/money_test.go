package money_test

import (
	"testing"

	"go-payledger/internal/shared/money"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 300.01, money.Round2(100.005+200.005))
	assert.Equal(t, 150.0, money.Round2(10*5.0+20*5.0))
	assert.Equal(t, 0.0, money.Round2(0))
	assert.Equal(t, 1.23, money.Round2(1.2349))
	assert.Equal(t, -1.24, money.Round2(-1.235))
}
