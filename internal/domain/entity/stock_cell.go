package entity

import "time"

// StockCell es una celda de inventario persistida: cantidad actual de una
// coordenada dentro de un equipo. La clave compuesta es
// (team_id, year, lot, format, warehouse_id).
type StockCell struct {
	TeamID      string
	Year        int
	Lot         Lot
	Format      Format
	WarehouseID string
	Qty         int
	UpdatedAt   time.Time
}

// Coordinate devuelve la coordenada de la celda.
func (s StockCell) Coordinate() Coordinate {
	return Coordinate{Year: s.Year, Lot: s.Lot, Format: s.Format, WarehouseID: s.WarehouseID}
}
