package money_test

import (
	"testing"

	"github.com/prosperitycompass/backend/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"negative", "-18.75", "-18.75", nil},
		{"integer", "2500", "2500", nil},
		{"padded", " 12.5 ", "12.5", nil},
		{"too precise", "1.234", "", money.ErrAmountPrecision},
		{"trailing zeros are fine", "1.2300", "1.23", nil},
		{"too large", "1000000000000", "", money.ErrAmountOutOfRange},
		{"garbage", "twelve", "", money.ErrInvalidAmount},
		{"empty", "", "", money.ErrInvalidAmount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.ParseAmount(tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "got %s", got)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "-18.75", money.Format(decimal.RequireFromString("-18.75")))
	assert.Equal(t, "2500.00", money.Format(decimal.NewFromInt(2500)))
}

func TestParseCode(t *testing.T) {
	c, err := money.ParseCode(" usd ")
	require.NoError(t, err)
	assert.Equal(t, money.USD, c)

	_, err = money.ParseCode("US")
	assert.ErrorIs(t, err, money.ErrInvalidCurrency)
	_, err = money.ParseCode("U$D")
	assert.ErrorIs(t, err, money.ErrInvalidCurrency)
}
