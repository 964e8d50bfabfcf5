package dto

// SetCellRequest entrada para fijar la cantidad de una celda.
// La cantidad se normaliza a max(0, floor(qty)) antes de almacenar.
type SetCellRequest struct {
	Year        int     `json:"year"`
	Lot         string  `json:"lot"`
	Format      string  `json:"format"`
	WarehouseID string  `json:"warehouse_id"`
	Qty         float64 `json:"qty"`
}

// AdjustCellRequest entrada para sumar un delta a una celda.
type AdjustCellRequest struct {
	Year        int     `json:"year"`
	Lot         string  `json:"lot"`
	Format      string  `json:"format"`
	WarehouseID string  `json:"warehouse_id"`
	Delta       float64 `json:"delta"`
}

// CellResponse estado de una celda tras una mutación.
type CellResponse struct {
	Year        int    `json:"year"`
	Lot         string `json:"lot"`
	Format      string `json:"format"`
	WarehouseID string `json:"warehouse_id"`
	Qty         int    `json:"qty"`
}

// GridRowResponse una fila derivada de la grilla.
type GridRowResponse struct {
	Year     int            `json:"year"`
	Lot      string         `json:"lot"`
	Format   string         `json:"format"`
	Totals   map[string]int `json:"totals"`
	RowTotal int            `json:"row_total"`
}

// GridResponse la grilla completa con totales y años observados.
type GridResponse struct {
	Rows              []GridRowResponse `json:"rows"`
	PerWarehouseTotal map[string]int    `json:"per_warehouse_total"`
	GrandTotal        int               `json:"grand_total"`
	Years             []int             `json:"years"`
}

// ImportResultResponse resultado de un import CSV: éxito parcial por norma.
type ImportResultResponse struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}
