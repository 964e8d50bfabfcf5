package entity

import "regexp"

// Lote de producción del aceite.
type Lot string

// Formato de envasado.
type Format string

// Valores cerrados de lote y formato. El orden de los slices es contractual:
// define el orden de enumeración de la grilla y de los exports.
const (
	LotA Lot = "A"
	LotB Lot = "B"
	LotC Lot = "C"

	Format500ml Format = "500ml"
	Format250ml Format = "250ml"
	Format5L    Format = "5L"
)

// Lots y Formats en orden de declaración (contrato observable en la grilla).
var (
	Lots    = []Lot{LotA, LotB, LotC}
	Formats = []Format{Format500ml, Format250ml, Format5L}
)

// Rango de años admitido para una celda de inventario.
const (
	MinYear = 2000
	MaxYear = 2100
)

// UnitVolumeML devuelve el volumen unitario en mililitros del formato.
// Devuelve 0 para un formato desconocido.
func UnitVolumeML(f Format) int64 {
	switch f {
	case Format500ml:
		return 500
	case Format250ml:
		return 250
	case Format5L:
		return 5000
	}
	return 0
}

// ValidLot verifica que el tag de lote pertenezca al conjunto cerrado.
func ValidLot(l Lot) bool {
	return l == LotA || l == LotB || l == LotC
}

// ValidFormat verifica que el tag de formato pertenezca al conjunto cerrado.
func ValidFormat(f Format) bool {
	return f == Format500ml || f == Format250ml || f == Format5L
}

// slugRe alfabeto permitido para IDs de bodega. Garantiza que el separador
// del Key Codec ("_") nunca aparezca dentro de un campo.
var slugRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidWarehouseID verifica que el ID sea un slug válido.
func ValidWarehouseID(id string) bool {
	return slugRe.MatchString(id)
}

// Coordinate identifica una celda de inventario: año, lote, formato y bodega.
// Valor inmutable; la igualdad es estructural.
type Coordinate struct {
	Year        int
	Lot         Lot
	Format      Format
	WarehouseID string
}

// Valid verifica año en rango, tags cerrados y slug de bodega.
func (c Coordinate) Valid() bool {
	return c.Year >= MinYear && c.Year <= MaxYear &&
		ValidLot(c.Lot) && ValidFormat(c.Format) &&
		ValidWarehouseID(c.WarehouseID)
}
