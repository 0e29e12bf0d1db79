package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultUnit unidad de venta por defecto.
const DefaultUnit = "пара"

// Product producto del catálogo, identificado por Article.
// ImagePath vacío significa sin imagen; una vez asignado, la importación no lo sobrescribe.
type Product struct {
	ID             string
	Article        string
	Name           string
	Unit           string
	Price          decimal.Decimal
	Discount       decimal.Decimal // porcentaje 0-100
	Stock          int
	Description    string
	ImagePath      string // relativo a la raíz de media, ej. products/foto.jpg
	CategoryID     string
	ManufacturerID string
	SupplierID     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasImage indica si el producto ya tiene imagen asignada.
func (p *Product) HasImage() bool {
	return p.ImagePath != ""
}
