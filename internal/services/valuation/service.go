package valuation

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/vpricescan/vpricego/internal/models"
	"github.com/vpricescan/vpricego/internal/scan"
)

// Offer classification thresholds against the fair bundle price.
const (
	negotiableCeiling = 1.15
	counterOfferRatio = 0.95
)

// Extractor is the AI boundary that turns listing text into the raw JSON
// extraction payload.
type Extractor interface {
	ExtractHardware(ctx context.Context, text string) (string, error)
}

// PageFetcher resolves a pasted listing URL into page text.
type PageFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// Service is the upstream valuation engine: it resolves the listing text,
// extracts hardware through the model, sums the component market prices and
// attaches the purchase verdict.
type Service struct {
	extractor Extractor
	fetcher   PageFetcher
}

// New builds the engine over its two collaborators.
func New(extractor Extractor, fetcher PageFetcher) *Service {
	return &Service{extractor: extractor, fetcher: fetcher}
}

// payload mirrors the JSON the extraction prompt demands. Every field is
// optional; absence is defaulted downstream, never an error.
type payload struct {
	Category          string             `json:"category"`
	CPU               string             `json:"cpu"`
	GPU               string             `json:"gpu"`
	RAM               string             `json:"ram"`
	Storage           string             `json:"storage"`
	Condition         string             `json:"condition"`
	BatteryHealth     *float64           `json:"battery_health"`
	BatteryVerdict    string             `json:"battery_verdict"`
	YearEstimation    int                `json:"year_estimation"`
	ListingPriceFound *float64           `json:"listing_price_found"`
	Components        []models.Component `json:"components"`
}

// Evaluate runs one valuation. Raw text that is a pasted link is scraped
// first; scrape and extraction failures are both valuation request errors
// and leave nothing behind.
func (s *Service) Evaluate(ctx context.Context, rawText string, manualPrice *float64) (*models.Result, error) {
	text := strings.TrimSpace(rawText)

	if strings.HasPrefix(text, "http") && s.fetcher != nil {
		scraped, err := s.fetcher.FetchText(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("listing page unreachable, paste the ad text instead: %w", err)
		}
		text = scraped
	}

	raw, err := s.extractor.ExtractHardware(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("valuation engine failed: %w", err)
	}

	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("valuation engine returned unreadable data: %w", err)
	}

	return s.assemble(&p, manualPrice), nil
}

func (s *Service) assemble(p *payload, manualPrice *float64) *models.Result {
	components := p.Components

	// Parts the model could not price on the used market get the
	// depreciation estimate instead of counting as zero.
	for i, c := range components {
		if c.PriceUsed == 0 && c.PriceNew > 0 && p.YearEstimation > 0 {
			components[i].PriceUsed = FairPartPrice(c.PriceNew, p.YearEstimation, p.Condition, c.Name+" "+c.Model)
		}
	}

	var totalUsed, totalNew float64
	for _, c := range components {
		totalUsed += c.PriceUsed
		totalNew += c.PriceNew
	}
	fair := round2(totalUsed * scan.FairPriceBundleRatio)

	category := p.Category
	if category == "" {
		category = "Desktop"
	}

	listing := p.ListingPriceFound
	if manualPrice != nil {
		listing = manualPrice
	}

	verdict, color, tactic := classifyOffer(fair, listing)

	return &models.Result{
		Category:            category,
		CPU:                 p.CPU,
		GPU:                 p.GPU,
		RAM:                 p.RAM,
		Storage:             p.Storage,
		Condition:           p.Condition,
		YearEstimation:      p.YearEstimation,
		CalculatedFairPrice: fair,
		ListingPriceFound:   listing,
		Verdict:             verdict,
		VerdictColor:        color,
		Components:          components,
		NegotiationTactic:   tactic,
		BatteryHealth:       p.BatteryHealth,
		BatteryVerdict:      p.BatteryVerdict,
		TotalPartsValueNew:  round2(totalNew),
		TotalPartsValueUsed: round2(totalUsed),
	}
}

// classifyOffer compares the asking price against the fair bundle price: at
// or below fair is a buy, up to 15% over is negotiable, beyond that is a
// pass. Without an asking price there is no verdict, only advice.
func classifyOffer(fair float64, listing *float64) (verdict, color, tactic string) {
	if listing == nil || *listing <= 0 {
		return "N/A", scan.ColorNeutral,
			fmt.Sprintf("Vale ~%.0f€. Pergunta o preço.", fair)
	}

	price := *listing
	switch {
	case price <= fair:
		return "COMPENSA COMPRAR ✅", scan.ColorGreen,
			fmt.Sprintf("Preço top! Pede %.0f€, vale %.0f€.", price, fair)
	case price <= fair*negotiableCeiling:
		return "NEGOCIÁVEL ⚠️", scan.ColorYellow,
			fmt.Sprintf("Pede %.0f€. O justo é %.0f€. Oferece %.0f€.", price, fair, fair*counterOfferRatio)
	default:
		return "NÃO COMPENSA ❌", scan.ColorRed,
			fmt.Sprintf("Roubo! Pede %.0f€ por material de %.0f€.", price, fair)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
