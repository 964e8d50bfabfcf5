package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/oleo-stock/internal/application/dto"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/inventory"
	"github.com/tu-usuario/oleo-stock/internal/domain/repository"
	"github.com/tu-usuario/oleo-stock/pkg/logger"
)

// CSVMimeType es el content type del export.
const CSVMimeType = "text/csv;charset=utf-8"

// CSVUseCase exporta e importa el snapshot plano como CSV.
type CSVUseCase struct {
	stock    *UseCase
	txRunner TxRunner
	log      *logger.Logger
}

// NewCSVUseCase construye el caso de uso.
func NewCSVUseCase(stock *UseCase, txRunner TxRunner, log *logger.Logger) *CSVUseCase {
	return &CSVUseCase{stock: stock, txRunner: txRunner, log: log}
}

// Export serializa el snapshot del equipo. Devuelve el nombre de archivo con
// el patrón fijo stock_<team>_<fecha>.csv y el texto CSV.
func (uc *CSVUseCase) Export(ctx context.Context, teamID string) (filename, text string, err error) {
	snap, err := uc.stock.snapshot(ctx, teamID)
	if err != nil {
		return "", "", err
	}
	text = inventory.SerializeCSV(snap.Cells(), teamID)
	filename = fmt.Sprintf("stock_%s_%s.csv", teamID, time.Now().Format("2006-01-02"))
	return filename, text, nil
}

// Import parsea el CSV, persiste las filas aceptadas en una sola transacción
// y aplica el resultado al snapshot en memoria. Las filas inválidas se
// cuentan como rechazadas sin abortar el lote; solo una cabecera incompleta
// (domain.ErrCSVHeader) falla la operación completa.
func (uc *CSVUseCase) Import(ctx context.Context, teamID, text string) (*dto.ImportResultResponse, error) {
	cells, rejected, err := inventory.ParseCSV(text)
	if err != nil {
		return nil, err
	}

	if len(cells) > 0 {
		rows := make([]*entity.StockCell, 0, len(cells))
		now := time.Now()
		for _, c := range cells {
			rows = append(rows, &entity.StockCell{
				TeamID:      teamID,
				Year:        c.Coord.Year,
				Lot:         c.Coord.Lot,
				Format:      c.Coord.Format,
				WarehouseID: c.Coord.WarehouseID,
				Qty:         c.Qty,
				UpdatedAt:   now,
			})
		}
		err = uc.txRunner.Run(ctx, func(cellRepo repository.StockCellRepository) error {
			return cellRepo.UpsertBatch(ctx, rows)
		})
		if err != nil {
			return nil, fmt.Errorf("importar %d celdas: %w", len(rows), err)
		}

		// Persistencia confirmada: recién ahora tocamos la memoria.
		snap, err := uc.stock.snapshot(ctx, teamID)
		if err != nil {
			return nil, err
		}
		for _, c := range cells {
			snap.Set(c.Coord, float64(c.Qty))
		}
	}

	uc.log.Info().
		Str("team_id", teamID).
		Int("accepted", len(cells)).
		Int("rejected", rejected).
		Msg("import CSV procesado")

	return &dto.ImportResultResponse{Accepted: len(cells), Rejected: rejected}, nil
}
