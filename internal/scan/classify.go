package scan

import "strings"

// Display colors for a verdict banner.
const (
	ColorGreen   = "green"
	ColorYellow  = "yellow"
	ColorRed     = "red"
	ColorNeutral = "neutral"
)

// Verdict keywords as the valuation engine emits them. Matching is a
// case-sensitive substring check on the stored text.
const (
	verdictKeywordGood       = "COMPENSA COMPRAR"
	verdictKeywordNegotiable = "NEGOCIÁVEL"
)

// VerdictColor maps stored verdict text to a display color. Free-form
// verdicts that lack the known keywords classify as red when non-empty and
// known, neutral otherwise, so a reconstructed color can disagree with what
// was originally rendered.
func VerdictColor(verdict string) string {
	switch {
	case strings.Contains(verdict, verdictKeywordGood):
		return ColorGreen
	case strings.Contains(verdict, verdictKeywordNegotiable):
		return ColorYellow
	case verdict != "" && verdict != "N/A":
		return ColorRed
	default:
		return ColorNeutral
	}
}

// BatteryBand describes how a battery health reading should be rendered.
type BatteryBand struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Label string `json:"label"`
}

// ClassifyBattery bands a battery health percentage. A nil or zero reading
// counts as unreported. The bands partition [0,100] with no gap: >=90
// excellent, >=80 healthy, the rest degraded.
func ClassifyBattery(percentage *float64) BatteryBand {
	if percentage == nil || *percentage == 0 {
		return BatteryBand{Icon: "battery", Color: "text-slate-500", Label: "Não Info"}
	}
	switch {
	case *percentage >= 90:
		return BatteryBand{Icon: "battery-charging", Color: "text-green-400", Label: "Excelente"}
	case *percentage >= 80:
		return BatteryBand{Icon: "battery", Color: "text-yellow-400", Label: "Saudável"}
	default:
		return BatteryBand{Icon: "alert-triangle", Color: "text-red-400", Label: "Degradada"}
	}
}

// CategoryIcon picks the glyph class for a detected category. Laptop synonyms
// win over phone synonyms; anything else renders as a desktop monitor.
func CategoryIcon(category string) string {
	cat := strings.ToLower(category)
	switch {
	case strings.Contains(cat, "laptop") || strings.Contains(cat, "portátil"):
		return "laptop"
	case strings.Contains(cat, "smartphone") || strings.Contains(cat, "telemóvel") || strings.Contains(cat, "phone"):
		return "smartphone"
	default:
		return "monitor"
	}
}
