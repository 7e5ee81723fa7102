package domain

import (
	"github.com/shopspring/decimal"
)

// minorUnitExponent is the number of decimal places between major and minor units (cents).
const minorUnitExponent = 2

// MinorUnits is a signed count of the smallest currency subdivision.
// All interior money arithmetic happens on this type.
type MinorUnits int64

// Major converts the amount back to major units for serialization or display.
func (m MinorUnits) Major() decimal.Decimal {
	return ToMajorUnits(m)
}

// ToMinorUnits converts a major-unit amount to minor units, rounding half away from zero.
func ToMinorUnits(major decimal.Decimal) MinorUnits {
	return MinorUnits(major.Shift(minorUnitExponent).Round(0).IntPart())
}

// ToMajorUnits converts minor units to a major-unit decimal.
func ToMajorUnits(minor MinorUnits) decimal.Decimal {
	return decimal.New(int64(minor), -minorUnitExponent)
}

// LineTotalMinor is price * quantity computed in minor units.
// Quantity is not validated here.
func LineTotalMinor(price decimal.Decimal, quantity int) MinorUnits {
	return ToMinorUnits(price) * MinorUnits(quantity)
}

// LineTotal is LineTotalMinor expressed in major units.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return ToMajorUnits(LineTotalMinor(price, quantity))
}

// SumMinor converts every amount to minor units and sums them as integers.
func SumMinor(amounts []decimal.Decimal) MinorUnits {
	var total MinorUnits
	for _, a := range amounts {
		total += ToMinorUnits(a)
	}
	return total
}

// Sum is SumMinor expressed in major units.
func Sum(amounts []decimal.Decimal) decimal.Decimal {
	return ToMajorUnits(SumMinor(amounts))
}
