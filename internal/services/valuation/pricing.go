package valuation

import (
	"strings"
	"time"
)

// Depreciation model for a single part's fair used price.
const (
	depreciationRatePerYear = 0.12
	noWarrantyPenalty       = 0.10
	obsoleteTechPenalty     = 0.20
	minResidualFactor       = 0.20 // scrap still has value
	minYearsUsed            = 0.5  // parts released this year count as half a year old
)

// FairPartPrice estimates what one used part is worth today: straight-line
// age depreciation floored at the residual value, then penalties for missing
// warranty and obsolete tech (DDR3, HDD).
func FairPartPrice(currentNewPrice float64, yearReleased int, condition, techType string) float64 {
	return fairPartPriceAt(currentNewPrice, yearReleased, condition, techType, time.Now().Year())
}

func fairPartPriceAt(currentNewPrice float64, yearReleased int, condition, techType string, currentYear int) float64 {
	yearsUsed := float64(currentYear - yearReleased)
	if yearsUsed < minYearsUsed {
		yearsUsed = minYearsUsed
	}

	factor := 1.0 - depreciationRatePerYear*yearsUsed
	if factor < minResidualFactor {
		factor = minResidualFactor
	}
	value := currentNewPrice * factor

	cond := strings.ToLower(condition)
	if !strings.Contains(cond, "garantia") && !strings.Contains(cond, "novo") {
		value -= value * noWarrantyPenalty
	}

	tech := strings.ToLower(techType)
	if strings.Contains(tech, "ddr3") || strings.Contains(tech, "hdd") {
		value -= value * obsoleteTechPenalty
	}

	return round2(value)
}
