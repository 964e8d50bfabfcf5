package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/inventory"
)

// El número de celdas antes de filtrar es |años| × 3 × 3 × |bodegas|.
func TestBuildGrid_ProductoCruzadoCompleto(t *testing.T) {
	snap := inventory.NewSnapshot()
	years := []int{2023, 2024}
	warehouses := []string{"roma", "neci"}

	rows := inventory.BuildGrid(years, warehouses, snap, inventory.Filters{})

	require.Len(t, rows, len(years)*3*3, "una fila por (año, lote, formato)")
	cells := 0
	for _, r := range rows {
		cells += len(r.Totals)
	}
	assert.Equal(t, len(years)*3*3*len(warehouses), cells)
}

// Orden contractual: años descendentes, lotes [A,B,C], formatos [500ml,250ml,5L].
func TestBuildGrid_Orden(t *testing.T) {
	snap := inventory.NewSnapshot()
	rows := inventory.BuildGrid([]int{2022, 2024, 2023}, []string{"roma"}, snap, inventory.Filters{})

	require.Len(t, rows, 27)
	assert.Equal(t, 2024, rows[0].Year)
	assert.Equal(t, entity.LotA, rows[0].Lot)
	assert.Equal(t, entity.Format500ml, rows[0].Format)
	assert.Equal(t, entity.Format250ml, rows[1].Format)
	assert.Equal(t, entity.Format5L, rows[2].Format)
	assert.Equal(t, entity.LotB, rows[3].Lot)
	assert.Equal(t, 2023, rows[9].Year)
	assert.Equal(t, 2022, rows[18].Year)
}

// Las celdas ausentes del snapshot valen 0; las presentes pueblan la fila.
func TestBuildGrid_PueblaDesdeSnapshot(t *testing.T) {
	snap := inventory.NewSnapshot()
	snap.Set(entity.Coordinate{Year: 2024, Lot: entity.LotA, Format: entity.Format500ml, WarehouseID: "roma"}, 10)
	snap.Set(entity.Coordinate{Year: 2024, Lot: entity.LotA, Format: entity.Format500ml, WarehouseID: "neci"}, 4)

	rows := inventory.BuildGrid([]int{2024}, []string{"roma", "neci"}, snap, inventory.Filters{})

	assert.Equal(t, 10, rows[0].Totals["roma"])
	assert.Equal(t, 4, rows[0].Totals["neci"])
	assert.Equal(t, 14, rows[0].RowTotal)
	assert.Equal(t, 0, rows[1].RowTotal, "fila sin datos en 0")
}

// La suma de RowTotal de la grilla sin filtrar coincide con GrandTotal.
func TestBuildGrid_ConsistenteConTotales(t *testing.T) {
	snap := inventory.NewSnapshot()
	warehouses := []string{"roma", "neci", "firenze"}
	snap.Set(entity.Coordinate{Year: 2024, Lot: entity.LotA, Format: entity.Format500ml, WarehouseID: "roma"}, 10)
	snap.Set(entity.Coordinate{Year: 2024, Lot: entity.LotB, Format: entity.Format5L, WarehouseID: "neci"}, 7)
	snap.Set(entity.Coordinate{Year: 2023, Lot: entity.LotC, Format: entity.Format250ml, WarehouseID: "firenze"}, 5)

	for _, yearFilter := range []int{0, 2023, 2024} {
		rows := inventory.BuildGrid(snap.Years(), warehouses, snap, inventory.Filters{Year: yearFilter})
		sum := 0
		for _, r := range rows {
			sum += r.RowTotal
		}
		grand := inventory.GrandTotal(inventory.PerWarehouseTotal(snap, warehouses, yearFilter))
		assert.Equal(t, grand, sum, "filtro de año %d", yearFilter)
	}
}

func TestBuildGrid_FiltroAnio(t *testing.T) {
	snap := inventory.NewSnapshot()
	rows := inventory.BuildGrid([]int{2023, 2024}, []string{"roma"}, snap, inventory.Filters{Year: 2024})
	require.Len(t, rows, 9)
	for _, r := range rows {
		assert.Equal(t, 2024, r.Year)
	}
}

// Búsqueda libre: substring sin distinguir mayúsculas sobre año/lote/formato.
func TestBuildGrid_BusquedaLibre(t *testing.T) {
	snap := inventory.NewSnapshot()
	years := []int{2024}

	rows := inventory.BuildGrid(years, []string{"roma"}, snap, inventory.Filters{Search: "5l"})
	require.Len(t, rows, 3, "un formato 5L por lote")
	for _, r := range rows {
		assert.Equal(t, entity.Format5L, r.Format)
	}

	rows = inventory.BuildGrid(years, []string{"roma"}, snap, inventory.Filters{Search: "2024"})
	assert.Len(t, rows, 9, "el año matchea todas sus filas")

	rows = inventory.BuildGrid(years, []string{"roma"}, snap, inventory.Filters{Search: "xyz"})
	assert.Empty(t, rows)
}

// Los filtros exactos combinan con semántica AND.
func TestBuildGrid_FiltrosCombinados(t *testing.T) {
	snap := inventory.NewSnapshot()
	snap.Set(entity.Coordinate{Year: 2024, Lot: entity.LotB, Format: entity.Format250ml, WarehouseID: "roma"}, 6)
	snap.Set(entity.Coordinate{Year: 2024, Lot: entity.LotB, Format: entity.Format250ml, WarehouseID: "neci"}, 2)

	rows := inventory.BuildGrid([]int{2024}, []string{"roma", "neci"}, snap, inventory.Filters{
		Year:        2024,
		Lot:         entity.LotB,
		Format:      entity.Format250ml,
		WarehouseID: "roma",
	})
	require.Len(t, rows, 1)
	assert.Equal(t, 6, rows[0].RowTotal, "solo cuenta la bodega filtrada")
	_, hayNeci := rows[0].Totals["neci"]
	assert.False(t, hayNeci)
}
