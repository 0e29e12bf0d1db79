package entity

import "time"

// DimensionKind tipo de entidad de referencia ligera a la que apuntan los productos.
type DimensionKind string

// Tipos de dimensión. Cada uno vive en su propia tabla con nombre único.
const (
	KindCategory     DimensionKind = "category"
	KindManufacturer DimensionKind = "manufacturer"
	KindSupplier     DimensionKind = "supplier"
)

// Placeholders cuando la celda viene vacía.
const (
	DefaultCategoryName     = "Без категории"
	DefaultManufacturerName = "Неизвестен"
	DefaultSupplierName     = "Неизвестен"
)

// Dimension representa una categoría, fabricante o proveedor.
// La clave natural es Name (coincidencia exacta, sensible a mayúsculas).
type Dimension struct {
	ID        string
	Kind      DimensionKind
	Name      string
	CreatedAt time.Time
}
