package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "2.450", Int(2450))
	assert.Equal(t, "600", Int(600))
	assert.Equal(t, "R$ 1.280.000", BRL(1280000))
	assert.Equal(t, "R$ 530", BRL(530))
	assert.Equal(t, "R$ 189K", BRLThousands(189000))
	assert.Equal(t, "26%", Percent(26.0))
	assert.Equal(t, "75.5%", Percent(75.5))
	assert.Equal(t, "7.5", Decimal(7.5))
}
