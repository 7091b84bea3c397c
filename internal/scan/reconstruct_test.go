package scan

import (
	"reflect"
	"testing"

	"gorm.io/datatypes"

	"github.com/vpricescan/vpricego/internal/models"
)

func TestReconstruct_RecomputesUsedTotal(t *testing.T) {
	rec := &models.Scan{ID: "s1", FairPrice: 180, ComponentsJSON: datatypes.JSON("[]")}

	res := Reconstruct(rec)

	if res.TotalPartsValueUsed != 200 {
		t.Errorf("TotalPartsValueUsed: got %v, want 200", res.TotalPartsValueUsed)
	}
	if res.TotalPartsValueNew != 0 {
		t.Errorf("TotalPartsValueNew: got %v, want 0", res.TotalPartsValueNew)
	}
	if res.BatteryHealth != nil {
		t.Errorf("BatteryHealth: got %v, want nil", *res.BatteryHealth)
	}
	if res.NegotiationTactic == "" {
		t.Error("NegotiationTactic placeholder missing")
	}
}

func TestReconstruct_DerivesVerdictColor(t *testing.T) {
	tests := []struct {
		verdict string
		want    string
	}{
		{"COMPENSA COMPRAR ✅", ColorGreen},
		{"NEGOCIÁVEL ⚠️", ColorYellow},
		{"NÃO COMPENSA ❌", ColorRed},
		{"N/A", ColorNeutral},
	}

	for _, tt := range tests {
		res := Reconstruct(&models.Scan{Verdict: tt.verdict, ComponentsJSON: datatypes.JSON("[]")})
		if res.VerdictColor != tt.want {
			t.Errorf("verdict %q: got color %q, want %q", tt.verdict, res.VerdictColor, tt.want)
		}
	}
}

func TestReconstruct_BadComponentsFallsBackToEmpty(t *testing.T) {
	rec := &models.Scan{
		ID:             "s2",
		FairPrice:      90,
		ComponentsJSON: datatypes.JSON("not valid json"),
	}

	res := Reconstruct(rec)

	if len(res.Components) != 0 {
		t.Errorf("Components: got %d entries, want 0", len(res.Components))
	}
	if res.Components == nil {
		t.Error("Components should be an empty slice, not nil")
	}
}

func TestReconstruct_ComponentsOrderSurvivesStorage(t *testing.T) {
	components := []models.Component{
		{Name: "CPU", Model: "Ryzen 5 3600", PriceNew: 180, PriceUsed: 95},
		{Name: "GPU", Model: "GTX 1660", PriceNew: 220, PriceUsed: 120},
		{Name: "SSD", Model: "500GB NVMe", PriceNew: 45, PriceUsed: 20},
	}
	rec := Normalize(&models.Result{Components: components}, "texto do anúncio")

	res := Reconstruct(&rec)

	if !reflect.DeepEqual(res.Components, components) {
		t.Errorf("Components mismatch:\n got %+v\nwant %+v", res.Components, components)
	}
}

func TestReconstruct_Idempotent(t *testing.T) {
	price := 250.0
	rec := &models.Scan{
		ID:             "s3",
		RawText:        "https://example.com/ad",
		Title:          "i5-10400 + RTX 3060",
		FairPrice:      540,
		ListingPrice:   &price,
		Verdict:        "COMPENSA COMPRAR ✅",
		Category:       "Desktop",
		ComponentsJSON: datatypes.JSON(`[{"name":"GPU","model":"RTX 3060","price_new":300,"price_used":200}]`),
	}

	first := Reconstruct(rec)
	second := Reconstruct(rec)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Reconstruct is not idempotent:\n first %+v\nsecond %+v", first, second)
	}
}
