package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-manager/utils"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", utils.FormatAmount(0))
	assert.Equal(t, "95.00", utils.FormatAmount(95))
	assert.Equal(t, "1,234.50", utils.FormatAmount(1234.5))
	assert.Equal(t, "1,000,000.00", utils.FormatAmount(1000000))
}

func TestFormatAmountNegative(t *testing.T) {
	assert.Equal(t, "-95.00", utils.FormatAmount(-95))
	assert.Equal(t, "-1,234.56", utils.FormatAmount(-1234.56))
}
