package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/inventory"
)

// Escenario: dos bodegas, una sola coordenada con 4 piezas en roma.
func TestPerWarehouseTotal_BodegaSinDatosEnCero(t *testing.T) {
	snap := inventory.NewSnapshot()
	snap.Set(entity.Coordinate{Year: 2024, Lot: entity.LotA, Format: entity.Format500ml, WarehouseID: "roma"}, 4)

	totals := inventory.PerWarehouseTotal(snap, []string{"roma", "neci"}, 0)

	assert.Equal(t, map[string]int{"roma": 4, "neci": 0}, totals)
	assert.Equal(t, 4, inventory.GrandTotal(totals))
}

func TestPerWarehouseTotal_FiltroAnio(t *testing.T) {
	snap := inventory.NewSnapshot()
	snap.Set(entity.Coordinate{Year: 2024, Lot: entity.LotA, Format: entity.Format500ml, WarehouseID: "roma"}, 4)
	snap.Set(entity.Coordinate{Year: 2023, Lot: entity.LotA, Format: entity.Format500ml, WarehouseID: "roma"}, 9)

	totals := inventory.PerWarehouseTotal(snap, []string{"roma"}, 2023)
	assert.Equal(t, 9, totals["roma"])

	totals = inventory.PerWarehouseTotal(snap, []string{"roma"}, 0)
	assert.Equal(t, 13, totals["roma"], "filtro 'todos' suma todos los años")
}

// Las bodegas fuera del conjunto visible no aportan al total.
func TestPerWarehouseTotal_BodegaDesactivadaNoSuma(t *testing.T) {
	snap := inventory.NewSnapshot()
	snap.Set(entity.Coordinate{Year: 2024, Lot: entity.LotA, Format: entity.Format500ml, WarehouseID: "roma"}, 4)
	snap.Set(entity.Coordinate{Year: 2024, Lot: entity.LotA, Format: entity.Format500ml, WarehouseID: "vieja"}, 8)

	totals := inventory.PerWarehouseTotal(snap, []string{"roma"}, 0)
	assert.Equal(t, map[string]int{"roma": 4}, totals)
}
