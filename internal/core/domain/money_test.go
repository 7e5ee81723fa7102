package domain_test

import (
	"fmt"
	"testing"

	"github.com/SscSPs/smart_pocket/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits_RoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   string
		want domain.MinorUnits
	}{
		{"0", 0},
		{"15.50", 1550},
		{"1.005", 101},
		{"2.675", 268},
		{"0.004", 0},
		{"-1.005", -101},
		{"-0.004", 0},
		{"89", 8900},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ToMinorUnits(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestMinorMajorRoundTrip(t *testing.T) {
	for _, s := range []string{"0.1", "0.125", "19.999", "-3.335", "1234567.891", "0.01"} {
		a := decimal.RequireFromString(s)
		got := domain.ToMajorUnits(domain.ToMinorUnits(a))
		assert.True(t, a.Round(2).Equal(got), "round trip of %s gave %s", s, got)
	}
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, domain.MinorUnits(3750), domain.LineTotalMinor(decimal.RequireFromString("12.50"), 3))
	assert.Equal(t, "0.30", domain.LineTotal(decimal.RequireFromString("0.1"), 3).StringFixed(2))
	assert.Equal(t, domain.MinorUnits(0), domain.LineTotalMinor(decimal.RequireFromString("5"), 0))
}

func TestSum_NoDriftAcrossManyIrregularAmounts(t *testing.T) {
	var amounts []decimal.Decimal
	var direct int64
	for i := 0; i < 250; i++ {
		cents := int64(i*7919%10000) + 1
		amounts = append(amounts, decimal.RequireFromString(fmt.Sprintf("%d.%02d", cents/100, cents%100)))
		direct += cents
	}

	assert.Equal(t, domain.MinorUnits(direct), domain.SumMinor(amounts))
	assert.True(t, decimal.New(direct, -2).Equal(domain.Sum(amounts)))
}

func TestMinorUnits_Major(t *testing.T) {
	assert.Equal(t, "15.50", domain.MinorUnits(1550).Major().StringFixed(2))
	assert.Equal(t, "-0.05", domain.MinorUnits(-5).Major().StringFixed(2))
}
