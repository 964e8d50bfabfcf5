package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/oleo-stock/internal/domain/repository"
)

// ReportUseCase arma el reporte PDF de la grilla de stock.
type ReportUseCase struct {
	stock         *UseCase
	warehouseRepo repository.WarehouseRepository
	teamRepo      repository.TeamRepository
	generator     GridPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(stock *UseCase, warehouseRepo repository.WarehouseRepository, teamRepo repository.TeamRepository, generator GridPDFGenerator) *ReportUseCase {
	return &ReportUseCase{stock: stock, warehouseRepo: warehouseRepo, teamRepo: teamRepo, generator: generator}
}

// Generate construye la grilla con el filtro de año dado y la renderiza.
// Devuelve el nombre de archivo con patrón fijo y los bytes del PDF.
func (uc *ReportUseCase) Generate(ctx context.Context, teamID string, yearFilter int) (filename string, pdf []byte, err error) {
	grid, err := uc.stock.Grid(ctx, teamID, GridFilters{Year: yearFilter})
	if err != nil {
		return "", nil, err
	}

	teamName := teamID
	if team, err := uc.teamRepo.GetByID(ctx, teamID); err == nil && team != nil {
		teamName = team.Name
	}
	warehouses, err := uc.warehouseRepo.ListActiveByTeam(ctx, teamID)
	if err != nil {
		return "", nil, err
	}

	report := &GridReport{
		TeamName:   teamName,
		YearFilter: yearFilter,
		GrandTotal: grid.GrandTotal,
	}
	for _, r := range grid.Rows {
		report.Rows = append(report.Rows, ReportRow{
			Year:     r.Year,
			Lot:      r.Lot,
			Format:   r.Format,
			RowTotal: r.RowTotal,
		})
	}
	for _, w := range warehouses {
		report.PerWarehouse = append(report.PerWarehouse, WarehouseTotal{
			Name:  w.Name,
			Total: grid.PerWarehouseTotal[w.ID],
		})
	}

	pdf, err = uc.generator.GenerateGridPDF(ctx, report)
	if err != nil {
		return "", nil, err
	}
	filename = fmt.Sprintf("stock_%s_%s.pdf", teamID, time.Now().Format("2006-01-02"))
	return filename, pdf, nil
}
