package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/inventory"
)

// Propiedad de ida y vuelta: DecodeKey(EncodeKey(c)) == c para toda
// coordenada bien formada.
func TestKeyCodec_RoundTrip(t *testing.T) {
	coords := []entity.Coordinate{
		{Year: 2024, Lot: entity.LotA, Format: entity.Format500ml, WarehouseID: "roma"},
		{Year: 2000, Lot: entity.LotB, Format: entity.Format250ml, WarehouseID: "neci"},
		{Year: 2100, Lot: entity.LotC, Format: entity.Format5L, WarehouseID: "bodega-2"},
		{Year: 2031, Lot: entity.LotA, Format: entity.Format5L, WarehouseID: "a1-b2-c3"},
	}
	for _, c := range coords {
		key := inventory.EncodeKey(c)
		got, ok := inventory.DecodeKey(key)
		require.True(t, ok, "la clave %q debe decodificar", key)
		assert.Equal(t, c, got)
	}
}

func TestKeyCodec_EncodeFormato(t *testing.T) {
	c := entity.Coordinate{Year: 2024, Lot: entity.LotA, Format: entity.Format500ml, WarehouseID: "roma"}
	assert.Equal(t, "2024_A_500ml_roma", inventory.EncodeKey(c))
}

// DecodeKey devuelve ok=false, nunca panic, ante claves malformadas.
func TestKeyCodec_DecodeInvalida(t *testing.T) {
	cases := []struct {
		name string
		key  string
	}{
		{"vacía", ""},
		{"menos de cuatro partes", "2024_A_500ml"},
		{"año no numérico", "abcd_A_500ml_roma"},
		{"año negativo", "-3_A_500ml_roma"},
		{"lote fuera del conjunto", "2024_Z_500ml_roma"},
		{"formato fuera del conjunto", "2024_A_750ml_roma"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := inventory.DecodeKey(tc.key)
			assert.False(t, ok)
		})
	}
}
