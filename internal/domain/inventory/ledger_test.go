package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/inventory"
)

func mov(kind string, pieces int, format entity.Format) entity.Movement {
	return entity.Movement{
		ID:          "m",
		Date:        time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		Kind:        kind,
		Year:        2024,
		Lot:         entity.LotA,
		Format:      format,
		WarehouseID: "roma",
		Pieces:      pieces,
	}
}

// Escenario: ingreso de 10 piezas y egreso de 3 sobre la misma coordenada
// 500ml → snapshot 7 y total en litros 7 × 500/1000 = 3.5.
func TestLedger_SnapshotYLitros(t *testing.T) {
	movements := []entity.Movement{
		mov(entity.MovementIngress, 10, entity.Format500ml),
		mov(entity.MovementEgress, 3, entity.Format500ml),
	}

	snap := inventory.LedgerSnapshot(movements)
	key := inventory.EncodeKey(movements[0].Coordinate())
	assert.Equal(t, 7, snap[key])

	liters := inventory.Liters(snap[key], entity.Format500ml)
	assert.True(t, liters.Equal(decimal.RequireFromString("3.5")), "litros = %s", liters)
}

func TestLedger_VolumenesUnitarios(t *testing.T) {
	assert.True(t, inventory.Liters(2, entity.Format250ml).Equal(decimal.RequireFromString("0.5")))
	assert.True(t, inventory.Liters(3, entity.Format5L).Equal(decimal.NewFromInt(15)))
	assert.True(t, inventory.Liters(0, entity.Format500ml).Equal(decimal.Zero))
}

// El resumen agrega por formato en orden de declaración.
func TestLedger_Resumen(t *testing.T) {
	movements := []entity.Movement{
		mov(entity.MovementIngress, 10, entity.Format500ml),
		mov(entity.MovementEgress, 3, entity.Format500ml),
		mov(entity.MovementIngress, 4, entity.Format5L),
	}

	summary := inventory.LedgerSummary(movements)
	require.Len(t, summary, 3)

	assert.Equal(t, entity.Format500ml, summary[0].Format)
	assert.Equal(t, 7, summary[0].Pieces)
	assert.Equal(t, entity.Format250ml, summary[1].Format)
	assert.Equal(t, 0, summary[1].Pieces)
	assert.Equal(t, entity.Format5L, summary[2].Format)
	assert.True(t, summary[2].Liters.Equal(decimal.NewFromInt(20)))
}

// Un log con más egresos que ingresos puede quedar negativo; el clamp ocurre
// al materializar en el snapshot de cantidades.
func TestLedger_PuedeQuedarNegativo(t *testing.T) {
	movements := []entity.Movement{
		mov(entity.MovementIngress, 2, entity.Format500ml),
		mov(entity.MovementEgress, 5, entity.Format500ml),
	}
	snap := inventory.LedgerSnapshot(movements)
	key := inventory.EncodeKey(movements[0].Coordinate())
	assert.Equal(t, -3, snap[key])
}
