package inventory

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
)

// Filters son los filtros activos sobre la grilla. Semántica AND entre todos
// los filtros activos. Year = 0 significa "todos los años".
type Filters struct {
	Year        int
	Search      string // substring, sin distinguir mayúsculas, sobre año/lote/formato
	WarehouseID string // exacto; restringe las columnas de la fila
	Lot         entity.Lot
	Format      entity.Format
}

// GridRow es una fila derivada de la tabla de stock: una combinación
// (año, lote, formato) con los totales por bodega y el total de fila.
// Nunca se persiste; se regenera completa en cada lectura.
type GridRow struct {
	Year     int
	Lot      entity.Lot
	Format   entity.Format
	Totals   map[string]int // warehouseID → cantidad
	RowTotal int
}

// BuildGrid enumera el producto cruzado años × lotes × formatos × bodegas y
// puebla cada celda desde el snapshot (0 por defecto), aplicando los filtros.
// Orden contractual: años descendentes, lotes [A,B,C] y formatos
// [500ml,250ml,5L] en orden de declaración. Se recalcula por completo en
// cada llamada; no hay actualización incremental.
func BuildGrid(years []int, warehouseIDs []string, snap *Snapshot, f Filters) []GridRow {
	sorted := append([]int(nil), years...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	search := strings.ToLower(strings.TrimSpace(f.Search))

	var rows []GridRow
	for _, year := range sorted {
		if f.Year != 0 && f.Year != year {
			continue
		}
		for _, lot := range entity.Lots {
			if f.Lot != "" && f.Lot != lot {
				continue
			}
			for _, format := range entity.Formats {
				if f.Format != "" && f.Format != format {
					continue
				}
				if !matchesSearch(search, year, lot, format) {
					continue
				}
				row := GridRow{
					Year:   year,
					Lot:    lot,
					Format: format,
					Totals: make(map[string]int, len(warehouseIDs)),
				}
				for _, wh := range warehouseIDs {
					if f.WarehouseID != "" && f.WarehouseID != wh {
						continue
					}
					qty := snap.Get(entity.Coordinate{Year: year, Lot: lot, Format: format, WarehouseID: wh})
					row.Totals[wh] = qty
					row.RowTotal += qty
				}
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// matchesSearch aplica la búsqueda libre sobre año, lote y formato.
func matchesSearch(search string, year int, lot entity.Lot, format entity.Format) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strconv.Itoa(year), search) ||
		strings.Contains(strings.ToLower(string(lot)), search) ||
		strings.Contains(strings.ToLower(string(format)), search)
}
