package scan

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"github.com/vpricescan/vpricego/internal/models"
)

// Defaults substituted when the upstream payload omits a field. Absence is
// never an error.
const (
	DefaultTitle    = "Scan desconhecido"
	DefaultCategory = "Outro"
	DefaultVerdict  = "N/A"
)

const titleSnippetRunes = 30

// Normalize flattens an upstream valuation result plus the user's raw input
// into the canonical fields of a Scan. Pure transformation: it never fails
// and persists nothing.
func Normalize(res *models.Result, rawText string) models.Scan {
	if res == nil {
		res = &models.Result{}
	}

	title := DefaultTitle
	if res.CPU != "" && res.GPU != "" {
		title = res.CPU + " + " + res.GPU
	} else if rawText != "" {
		title = titleSnippet(rawText)
	}

	rec := models.Scan{
		RawText:        rawText,
		ProductURL:     DetectProductURL(rawText),
		Title:          title,
		FairPrice:      res.CalculatedFairPrice,
		ListingPrice:   res.ListingPriceFound,
		Verdict:        DefaultVerdict,
		Category:       DefaultCategory,
		ComponentsJSON: MarshalComponents(res.Components),
	}
	if res.Verdict != "" {
		rec.Verdict = res.Verdict
	}
	if res.Category != "" {
		rec.Category = res.Category
	}
	return rec
}

// DetectProductURL returns the trimmed raw text when it is a pasted link,
// nil otherwise. Anything whose trimmed form starts with an http scheme
// prefix counts as a link.
func DetectProductURL(rawText string) *string {
	t := strings.TrimSpace(rawText)
	if strings.HasPrefix(t, "http") {
		return &t
	}
	return nil
}

func titleSnippet(raw string) string {
	r := []rune(raw)
	if len(r) > titleSnippetRunes {
		r = r[:titleSnippetRunes]
	}
	return string(r) + "..."
}

// MarshalComponents serializes the component breakdown in order. A nil slice
// stores as an empty array so reconstruction always has valid JSON to read.
func MarshalComponents(components []models.Component) datatypes.JSON {
	if components == nil {
		components = []models.Component{}
	}
	data, err := json.Marshal(components)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}
