package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0", FormatPrice(0))
	assert.Equal(t, "950", FormatPrice(950))
	assert.Equal(t, "1,000", FormatPrice(1000))
	assert.Equal(t, "12,345,678", FormatPrice(12345678.9))
}
