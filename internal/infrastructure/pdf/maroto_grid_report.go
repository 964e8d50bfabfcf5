// Package pdf implementa el reporte imprimible de la grilla de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Equipo + filtro de año  │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Año | Lote | Formato | Total piezas                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES POR BODEGA: nombre → piezas                         │
//	│  TOTAL GENERAL                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/oleo-stock/internal/application/stock"
)

var (
	colorPrimary = &props.Color{Red: 85, Green: 107, Blue: 47}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoGridReport implementa stock.GridPDFGenerator usando Maroto v2.
type MarotoGridReport struct{}

// NewMarotoGridReport construye el generador.
func NewMarotoGridReport() *MarotoGridReport { return &MarotoGridReport{} }

// GenerateGridPDF genera el PDF y devuelve sus bytes.
func (g *MarotoGridReport) GenerateGridPDF(_ context.Context, report *stock.GridReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Stock de aceite", true).
		WithAuthor(report.TeamName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range report.Rows {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, wt := range report.PerWarehouse {
		m.AddRows(warehouseTotalRow(wt))
	}
	m.AddRows(grandTotalRow(report.GrandTotal))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: equipo y filtro (izq), fecha de generación (der).
func headerRow(report *stock.GridReport) core.Row {
	scope := "Todos los años"
	if report.YearFilter != 0 {
		scope = "Año " + strconv.Itoa(report.YearFilter)
	}
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.TeamName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(scope, props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size: 9, Top: 1, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		col.New(3).Add(text.New("Año", header)),
		col.New(3).Add(text.New("Lote", header)),
		col.New(3).Add(text.New("Formato", header)),
		col.New(3).Add(text.New("Total piezas", headerRight)),
	)
}

func tableDetailRow(r stock.ReportRow) core.Row {
	cell := props.Text{Size: 9}
	cellRight := props.Text{Size: 9, Align: align.Right}
	return row.New(6).Add(
		col.New(3).Add(text.New(strconv.Itoa(r.Year), cell)),
		col.New(3).Add(text.New(r.Lot, cell)),
		col.New(3).Add(text.New(r.Format, cell)),
		col.New(3).Add(text.New(strconv.Itoa(r.RowTotal), cellRight)),
	)
}

func warehouseTotalRow(wt stock.WarehouseTotal) core.Row {
	return row.New(6).Add(
		col.New(9).Add(text.New(wt.Name, props.Text{Size: 9, Color: colorGray})),
		col.New(3).Add(text.New(strconv.Itoa(wt.Total), props.Text{Size: 9, Align: align.Right})),
	)
}

func grandTotalRow(total int) core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary}
	return row.New(8).Add(
		col.New(9).Add(text.New("TOTAL GENERAL", bold)),
		col.New(3).Add(text.New(strconv.Itoa(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary,
		})),
	)
}
