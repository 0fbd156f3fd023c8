package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName             = errors.New("nome não pode ser vazio")
	ErrEmptySupplier         = errors.New("fornecedor não informado")
	ErrInvalidPrice          = errors.New("preço inválido")
	ErrInvalidUnitConversion = errors.New("conversão de unidade indisponível para este produto")
)

// Category define a categoria do produto
type Category string

const (
	CategoryTile      Category = "Tile"      // Cerâmicas e porcelanatos
	CategorySanitary  Category = "Sanitary"  // Louças sanitárias
	CategoryAccessory Category = "Accessory" // Argamassas, rejuntes e acessórios
)

// UnitType define a unidade de venda/estoque
type UnitType string

const (
	UnitBox  UnitType = "Box"
	UnitSqft UnitType = "Sq.ft"
	UnitPcs  UnitType = "Pcs"
	UnitSet  UnitType = "Set"
)

// Status representa o estado do produto
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Product representa um produto no catálogo da loja.
// StockQty é um saldo de cache: deve ser sempre igual ao somatório
// dos lançamentos do stock log do produto.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	Brand          string          `json:"brand"`
	Category       Category        `json:"category"`
	Size           string          `json:"size"`
	Unit           UnitType        `json:"unit"`
	TilesPerBox    int             `json:"tiles_per_box"`
	CoveragePerBox decimal.Decimal `json:"coverage_per_box"` // área (sq.ft) coberta por uma caixa; apenas Tile
	CostPrice      decimal.Decimal `json:"cost_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	SupplierID     string          `json:"supplier_id"`
	StockQty       decimal.Decimal `json:"stock_qty"`
	MinStockAlert  decimal.Decimal `json:"min_stock_alert"`
	Barcode        string          `json:"barcode"`
	Status         Status          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(name string, category Category, unit UnitType, supplierID string, costPrice, salePrice decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if supplierID == "" {
		return nil, ErrEmptySupplier
	}
	if costPrice.IsNegative() || salePrice.IsNegative() {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	return &Product{
		ID:         uuid.New().String(),
		Name:       name,
		Category:   category,
		Unit:       unit,
		SupplierID: supplierID,
		CostPrice:  costPrice,
		SalePrice:  salePrice,
		StockQty:   decimal.Zero,
		Status:     StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// convertible informa se o produto aceita troca de unidade entre
// caixa e metragem (apenas Tile com fator de cobertura definido).
func (p *Product) convertible() bool {
	return p.Category == CategoryTile && p.Unit == UnitBox && p.CoveragePerBox.IsPositive()
}

// SupportsUnit verifica se a unidade pode ser usada na venda deste produto
func (p *Product) SupportsUnit(u UnitType) bool {
	if u == p.Unit {
		return true
	}
	return u == UnitSqft && p.convertible()
}

// StockUnitsFor converte uma quantidade na unidade de venda para a
// unidade de estoque do produto. Para Tile com CoveragePerBox definido,
// Sq.ft vira fração de caixa; qualquer outra troca de unidade é erro.
func (p *Product) StockUnitsFor(u UnitType, qty decimal.Decimal) (decimal.Decimal, error) {
	if u == p.Unit {
		return qty, nil
	}
	if u == UnitSqft && p.convertible() {
		return qty.DivRound(p.CoveragePerBox, 6), nil
	}
	return decimal.Zero, ErrInvalidUnitConversion
}

// AreaFor converte uma quantidade em unidade de estoque (caixas) para a
// área equivalente em Sq.ft. Operação inversa de StockUnitsFor.
func (p *Product) AreaFor(stockQty decimal.Decimal) (decimal.Decimal, error) {
	if !p.convertible() {
		return decimal.Zero, ErrInvalidUnitConversion
	}
	return stockQty.Mul(p.CoveragePerBox), nil
}

// UnitPriceFor retorna o preço de venda na unidade solicitada.
// A conversão de preço espelha a de quantidade: preço por Sq.ft =
// SalePrice / CoveragePerBox.
func (p *Product) UnitPriceFor(u UnitType) (decimal.Decimal, error) {
	if u == p.Unit {
		return p.SalePrice, nil
	}
	if u == UnitSqft && p.convertible() {
		return p.SalePrice.DivRound(p.CoveragePerBox, 4), nil
	}
	return decimal.Zero, ErrInvalidUnitConversion
}

// IsLowStock verifica se o estoque está abaixo do alerta mínimo
func (p *Product) IsLowStock() bool {
	return p.MinStockAlert.IsPositive() && p.StockQty.LessThanOrEqual(p.MinStockAlert)
}

// IsActive verifica se o produto está ativo
func (p *Product) IsActive() bool {
	return p.Status == StatusActive
}

// Update atualiza os dados cadastrais do produto. O saldo de estoque não
// passa por aqui: só muda por lançamento no stock log.
func (p *Product) Update(
	name string,
	sku string,
	brand string,
	category Category,
	size string,
	unit UnitType,
	tilesPerBox int,
	coveragePerBox decimal.Decimal,
	costPrice decimal.Decimal,
	salePrice decimal.Decimal,
	supplierID string,
	minStockAlert decimal.Decimal,
) error {
	if name == "" {
		return ErrEmptyName
	}
	if costPrice.IsNegative() || salePrice.IsNegative() {
		return ErrInvalidPrice
	}

	p.Name = name
	p.SKU = sku
	p.Brand = brand
	p.Category = category
	p.Size = size
	p.Unit = unit
	p.TilesPerBox = tilesPerBox
	p.CoveragePerBox = coveragePerBox
	p.CostPrice = costPrice
	p.SalePrice = salePrice
	p.SupplierID = supplierID
	p.MinStockAlert = minStockAlert
	p.UpdatedAt = time.Now()

	return nil
}

// CategoryConfig representa uma categoria cadastrável de produtos
// (prefixo de código de barras, unidade padrão e alíquota)
type CategoryConfig struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        Category        `json:"type"`
	Prefix      string          `json:"prefix"`
	DefaultUnit UnitType        `json:"default_unit"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewCategoryConfig cria uma nova categoria de produtos
func NewCategoryConfig(name string, typ Category, prefix string, defaultUnit UnitType, taxRate decimal.Decimal) (*CategoryConfig, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	now := time.Now()
	return &CategoryConfig{
		ID:          uuid.New().String(),
		Name:        name,
		Type:        typ,
		Prefix:      prefix,
		DefaultUnit: defaultUnit,
		TaxRate:     taxRate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados da categoria de produtos
func (c *CategoryConfig) Update(name string, typ Category, prefix string, defaultUnit UnitType, taxRate decimal.Decimal) error {
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	c.Type = typ
	c.Prefix = prefix
	c.DefaultUnit = defaultUnit
	c.TaxRate = taxRate
	c.UpdatedAt = time.Now()
	return nil
}
