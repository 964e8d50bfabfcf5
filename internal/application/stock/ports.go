package stock

import (
	"context"

	"github.com/tu-usuario/oleo-stock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de celdas atado a esa tx. Garantiza que un import CSV entre
// completo o no entre.
type TxRunner interface {
	Run(ctx context.Context, fn func(cellRepo repository.StockCellRepository) error) error
}

// GridReport es el insumo del reporte PDF de la grilla.
type GridReport struct {
	TeamName     string
	YearFilter   int // 0 = todos
	Rows         []ReportRow
	PerWarehouse []WarehouseTotal
	GrandTotal   int
}

// ReportRow una fila (año, lote, formato, total) del reporte.
type ReportRow struct {
	Year     int
	Lot      string
	Format   string
	RowTotal int
}

// WarehouseTotal total agregado de una bodega para el reporte.
type WarehouseTotal struct {
	Name  string
	Total int
}

// GridPDFGenerator renderiza el reporte de la grilla como PDF.
type GridPDFGenerator interface {
	GenerateGridPDF(ctx context.Context, report *GridReport) ([]byte, error)
}
