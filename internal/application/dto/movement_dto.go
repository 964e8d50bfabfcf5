package dto

import "time"

// RegisterMovementRequest entrada para registrar un ingreso o egreso.
type RegisterMovementRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD; vacío = hoy
	Operator    string `json:"operator"`
	Kind        string `json:"kind"` // ingress | egress
	Year        int    `json:"year"`
	Lot         string `json:"lot"`
	Format      string `json:"format"`
	WarehouseID string `json:"warehouse_id"`
	Pieces      int    `json:"pieces"` // > 0
	Notes       string `json:"notes"`
}

// MovementResponse un movimiento registrado.
type MovementResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Operator    string    `json:"operator,omitempty"`
	Kind        string    `json:"kind"`
	Year        int       `json:"year"`
	Lot         string    `json:"lot"`
	Format      string    `json:"format"`
	WarehouseID string    `json:"warehouse_id"`
	Pieces      int       `json:"pieces"`
	Notes       string    `json:"notes,omitempty"`
}

// FormatTotalResponse agregado por formato del resumen del ledger.
type FormatTotalResponse struct {
	Format string `json:"format"`
	Pieces int    `json:"pieces"`
	Liters string `json:"liters"` // decimal como string para no perder precisión
}

// MovementSummaryResponse resumen derivado del log de movimientos.
type MovementSummaryResponse struct {
	Totals      []FormatTotalResponse `json:"totals"`
	TotalLiters string                `json:"total_liters"`
}
