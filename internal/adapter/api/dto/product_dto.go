package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pos-ceramica/internal/domain/product"
	"github.com/hugohenrick/pos-ceramica/internal/domain/stock"
)

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	Name           string          `json:"name" binding:"required"`
	SKU            string          `json:"sku"`
	Brand          string          `json:"brand"`
	Category       string          `json:"category" binding:"required"`
	Size           string          `json:"size"`
	Unit           string          `json:"unit" binding:"required"`
	TilesPerBox    int             `json:"tiles_per_box"`
	CoveragePerBox decimal.Decimal `json:"coverage_per_box"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	SupplierID     string          `json:"supplier_id"`
	MinStockAlert  decimal.Decimal `json:"min_stock_alert"`
	Barcode        string          `json:"barcode"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	Brand          string          `json:"brand"`
	Category       string          `json:"category"`
	Size           string          `json:"size"`
	Unit           string          `json:"unit"`
	TilesPerBox    int             `json:"tiles_per_box"`
	CoveragePerBox decimal.Decimal `json:"coverage_per_box"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	PricePerSqft   decimal.Decimal `json:"price_per_sqft,omitempty"`
	SupplierID     string          `json:"supplier_id"`
	StockQty       decimal.Decimal `json:"stock_qty"`
	MinStockAlert  decimal.Decimal `json:"min_stock_alert"`
	LowStock       bool            `json:"low_stock"`
	Barcode        string          `json:"barcode"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// StockAdjustRequest representa a requisição de ajuste manual de estoque
type StockAdjustRequest struct {
	NewQty decimal.Decimal `json:"new_qty"`
	Note   string          `json:"note" binding:"required"`
}

// StockLogResponse representa um lançamento do razão de estoque
type StockLogResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	ProductID   string          `json:"product_id"`
	Kind        string          `json:"kind"`
	QtyChange   decimal.Decimal `json:"qty_change"`
	OldStock    decimal.Decimal `json:"old_stock"`
	NewStock    decimal.Decimal `json:"new_stock"`
	ReferenceID string          `json:"reference_id,omitempty"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CategoryConfigRequest representa a requisição de categoria de produto
type CategoryConfigRequest struct {
	Name        string          `json:"name" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Prefix      string          `json:"prefix"`
	DefaultUnit string          `json:"default_unit"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// CategoryConfigResponse representa a resposta de categoria de produto
type CategoryConfigResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Prefix      string          `json:"prefix"`
	DefaultUnit string          `json:"default_unit"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToCategoryConfigResponse converte uma categoria de produto para DTO
func ToCategoryConfigResponse(c *product.CategoryConfig) CategoryConfigResponse {
	return CategoryConfigResponse{
		ID:          c.ID,
		Name:        c.Name,
		Type:        string(c.Type),
		Prefix:      c.Prefix,
		DefaultUnit: string(c.DefaultUnit),
		TaxRate:     c.TaxRate,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryConfigResponses converte categorias de produto para DTO
func ToCategoryConfigResponses(categories []*product.CategoryConfig) []CategoryConfigResponse {
	out := make([]CategoryConfigResponse, len(categories))
	for i, c := range categories {
		out[i] = ToCategoryConfigResponse(c)
	}
	return out
}

// ToProductResponse converte um produto do domínio para DTO
func ToProductResponse(p *product.Product) ProductResponse {
	resp := ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		SKU:            p.SKU,
		Brand:          p.Brand,
		Category:       string(p.Category),
		Size:           p.Size,
		Unit:           string(p.Unit),
		TilesPerBox:    p.TilesPerBox,
		CoveragePerBox: p.CoveragePerBox,
		CostPrice:      p.CostPrice,
		SalePrice:      p.SalePrice,
		SupplierID:     p.SupplierID,
		StockQty:       p.StockQty,
		MinStockAlert:  p.MinStockAlert,
		LowStock:       p.IsLowStock(),
		Barcode:        p.Barcode,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if perSqft, err := p.UnitPriceFor(product.UnitSqft); err == nil {
		resp.PricePerSqft = perSqft
	}
	return resp
}

// ToProductListResponse converte uma lista de produtos do domínio para DTO
func ToProductListResponse(products []*product.Product, total, page, size int) ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = ToProductResponse(p)
	}
	return ProductListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}

// ToStockLogResponses converte lançamentos de estoque para DTO
func ToStockLogResponses(logs []*stock.Log) []StockLogResponse {
	out := make([]StockLogResponse, len(logs))
	for i, l := range logs {
		out[i] = StockLogResponse{
			ID:          l.ID,
			Date:        l.Date,
			ProductID:   l.ProductID,
			Kind:        string(l.Kind),
			QtyChange:   l.QtyChange,
			OldStock:    l.OldStock,
			NewStock:    l.NewStock,
			ReferenceID: l.ReferenceID,
			Note:        l.Note,
			CreatedAt:   l.CreatedAt,
		}
	}
	return out
}
