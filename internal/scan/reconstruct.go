package scan

import (
	"encoding/json"
	"log"

	"github.com/vpricescan/vpricego/internal/models"
)

// FairPriceBundleRatio ties a stored fair price back to the used-parts total:
// the valuation engine prices a complete system at 90% of the sum of its used
// parts, so reconstruction divides by the same ratio. A lossy heuristic
// inherited from the pricing model, not an exact inverse.
const FairPriceBundleRatio = 0.90

// reconstructedTactic stands in for the negotiation advice, which is not
// persisted.
const reconstructedTactic = "Scan antigo: consulta os componentes abaixo."

// Reconstruct rebuilds a display result from a stored scan. The inverse of
// Normalize is lossy by design: battery health, the new-parts total and the
// tactic are replaced with placeholders, and the verdict color is re-derived
// from the stored verdict text. Pure and idempotent; it never touches the
// store.
func Reconstruct(rec *models.Scan) *models.Result {
	components := []models.Component{}
	if len(rec.ComponentsJSON) > 0 {
		if err := json.Unmarshal(rec.ComponentsJSON, &components); err != nil {
			log.Printf("⚠️ Scan %s: stored components unreadable, showing none: %v", rec.ID, err)
			components = []models.Component{}
		}
	}

	return &models.Result{
		Category:            rec.Category,
		CalculatedFairPrice: rec.FairPrice,
		ListingPriceFound:   rec.ListingPrice,
		Verdict:             rec.Verdict,
		VerdictColor:        VerdictColor(rec.Verdict),
		Components:          components,
		NegotiationTactic:   reconstructedTactic,
		BatteryHealth:       nil,
		TotalPartsValueNew:  0,
		TotalPartsValueUsed: rec.FairPrice / FairPriceBundleRatio,
		RawText:             rec.RawText,
	}
}
