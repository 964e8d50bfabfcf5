package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementIngress = "ingress" // entrada
	MovementEgress  = "egress"  // salida
)

// Movement es un evento inmutable de entrada o salida de piezas sobre una
// coordenada. El snapshot derivado de una coordenada es la suma con signo
// de sus movimientos (ingress positivo, egress negativo).
type Movement struct {
	ID          string
	TeamID      string
	Date        time.Time
	Operator    string // opcional
	Kind        string // ingress | egress
	Year        int
	Lot         Lot
	Format      Format
	WarehouseID string
	Pieces      int // siempre > 0; el signo lo da Kind
	Notes       string
	CreatedAt   time.Time
	CreatedBy   string
}

// ValidKind verifica el tipo de movimiento.
func ValidKind(kind string) bool {
	return kind == MovementIngress || kind == MovementEgress
}

// Coordinate devuelve la coordenada afectada por el movimiento.
func (m Movement) Coordinate() Coordinate {
	return Coordinate{Year: m.Year, Lot: m.Lot, Format: m.Format, WarehouseID: m.WarehouseID}
}

// SignedPieces devuelve las piezas con signo según el tipo.
func (m Movement) SignedPieces() int {
	if m.Kind == MovementEgress {
		return -m.Pieces
	}
	return m.Pieces
}
