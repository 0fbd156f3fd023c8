package product

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func tileProduct(coverage string) *Product {
	p := &Product{
		ID:        "p1",
		Name:      "Porcelanato Cinza 60x60",
		Category:  CategoryTile,
		Unit:      UnitBox,
		SalePrice: decimal.RequireFromString("2800"),
	}
	if coverage != "" {
		p.CoveragePerBox = decimal.RequireFromString(coverage)
	}
	return p
}

func TestStockUnitsFor_NativeUnit(t *testing.T) {
	p := tileProduct("16")

	got, err := p.StockUnitsFor(UnitBox, decimal.NewFromInt(5))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(5)) {
		t.Errorf("esperado 5, obtido %s", got)
	}
}

func TestStockUnitsFor_SqftToBox(t *testing.T) {
	p := tileProduct("16")

	got, err := p.StockUnitsFor(UnitSqft, decimal.NewFromInt(32))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(2)) {
		t.Errorf("esperado 2 caixas, obtido %s", got)
	}
}

func TestStockUnitsFor_WithoutCoverage(t *testing.T) {
	p := tileProduct("")

	_, err := p.StockUnitsFor(UnitSqft, decimal.NewFromInt(10))
	if !errors.Is(err, ErrInvalidUnitConversion) {
		t.Errorf("esperado ErrInvalidUnitConversion, obtido %v", err)
	}
}

func TestStockUnitsFor_NonTileCategory(t *testing.T) {
	p := &Product{
		ID:       "p2",
		Name:     "Vaso Sanitário Luxo",
		Category: CategorySanitary,
		Unit:     UnitSet,
	}

	if _, err := p.StockUnitsFor(UnitSqft, decimal.NewFromInt(1)); !errors.Is(err, ErrInvalidUnitConversion) {
		t.Errorf("esperado ErrInvalidUnitConversion, obtido %v", err)
	}
	if !p.SupportsUnit(UnitSet) {
		t.Error("unidade nativa deveria ser aceita")
	}
	if p.SupportsUnit(UnitSqft) {
		t.Error("Sq.ft não deveria ser aceita para sanitários")
	}
}

func TestUnitConversionRoundTrip(t *testing.T) {
	cases := []struct {
		coverage string
		boxes    string
	}{
		{"16", "2"},
		{"16", "7.5"},
		{"21.5", "3"},
		{"12.25", "10"},
	}

	for _, tc := range cases {
		p := tileProduct(tc.coverage)
		boxes := decimal.RequireFromString(tc.boxes)

		area, err := p.AreaFor(boxes)
		if err != nil {
			t.Fatalf("coverage=%s: %v", tc.coverage, err)
		}
		back, err := p.StockUnitsFor(UnitSqft, area)
		if err != nil {
			t.Fatalf("coverage=%s: %v", tc.coverage, err)
		}

		// tolerância para o arredondamento da divisão
		diff := back.Sub(boxes).Abs()
		if diff.GreaterThan(decimal.RequireFromString("0.000001")) {
			t.Errorf("coverage=%s boxes=%s: ida e volta resultou %s (diff %s)", tc.coverage, tc.boxes, back, diff)
		}
	}
}

func TestUnitPriceFor(t *testing.T) {
	p := tileProduct("16")

	price, err := p.UnitPriceFor(UnitSqft)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !price.Equal(decimal.RequireFromString("175")) {
		t.Errorf("esperado 175 por sq.ft, obtido %s", price)
	}

	native, err := p.UnitPriceFor(UnitBox)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !native.Equal(p.SalePrice) {
		t.Errorf("preço na unidade nativa deveria ser o SalePrice")
	}
}

func TestUnitPriceFor_ZeroCoverage(t *testing.T) {
	p := tileProduct("")
	p.CoveragePerBox = decimal.Zero

	if _, err := p.UnitPriceFor(UnitSqft); !errors.Is(err, ErrInvalidUnitConversion) {
		t.Errorf("esperado ErrInvalidUnitConversion, obtido %v", err)
	}
}

func TestIsLowStock(t *testing.T) {
	p := tileProduct("16")
	p.MinStockAlert = decimal.NewFromInt(20)

	p.StockQty = decimal.NewFromInt(25)
	if p.IsLowStock() {
		t.Error("25 > 20 não é estoque baixo")
	}

	p.StockQty = decimal.NewFromInt(20)
	if !p.IsLowStock() {
		t.Error("20 <= 20 é estoque baixo")
	}

	p.MinStockAlert = decimal.Zero
	if p.IsLowStock() {
		t.Error("sem alerta configurado nunca é estoque baixo")
	}
}
