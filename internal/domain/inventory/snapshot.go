package inventory

import (
	"math"
	"sort"
	"sync"

	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
)

// Cell es una entrada plana coordenada → cantidad, la unidad de intercambio
// entre el snapshot, el codec CSV y la capa de persistencia.
type Cell struct {
	Coord entity.Coordinate
	Qty   int
}

// ClampQty normaliza una cantidad a max(0, floor(v)) antes de almacenarla.
func ClampQty(v float64) int {
	n := int(math.Floor(v))
	if n < 0 {
		return 0
	}
	return n
}

// Snapshot es el mapa en memoria coordenada → cantidad no negativa, más el
// conjunto de años observados. Es una caché read-through/write-through del
// almacén externo: no tiene durabilidad propia. Protegido con RWMutex porque
// los handlers HTTP lo leen concurrentemente.
type Snapshot struct {
	mu    sync.RWMutex
	cells map[string]int
	years map[int]struct{}
}

// NewSnapshot crea un snapshot vacío.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		cells: make(map[string]int),
		years: make(map[int]struct{}),
	}
}

// Get devuelve la cantidad de una coordenada; 0 si no existe.
func (s *Snapshot) Get(c entity.Coordinate) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cells[EncodeKey(c)]
}

// Set fija la cantidad de una coordenada, normalizada con ClampQty, y
// registra el año como observado. Devuelve el valor almacenado.
func (s *Snapshot) Set(c entity.Coordinate, v float64) int {
	qty := ClampQty(v)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells[EncodeKey(c)] = qty
	s.years[c.Year] = struct{}{}
	return qty
}

// Adjust suma delta a la cantidad actual: Set(c, Get(c)+delta).
// Al pasar por el clamp, un decremento desde 0 se queda en 0.
func (s *Snapshot) Adjust(c entity.Coordinate, delta float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	qty := ClampQty(float64(s.cells[EncodeKey(c)]) + delta)
	s.cells[EncodeKey(c)] = qty
	s.years[c.Year] = struct{}{}
	return qty
}

// Hydrate reemplaza todo el mapa con las celdas recién traídas del almacén y
// recalcula el conjunto de años observados como la unión de los años vistos.
func (s *Snapshot) Hydrate(cells []Cell) {
	next := make(map[string]int, len(cells))
	years := make(map[int]struct{})
	for _, cell := range cells {
		next[EncodeKey(cell.Coord)] = ClampQty(float64(cell.Qty))
		years[cell.Coord.Year] = struct{}{}
	}
	s.mu.Lock()
	s.cells = next
	s.years = years
	s.mu.Unlock()
}

// AddYear registra un año por acción explícita del usuario. Los años nunca
// se podan automáticamente.
func (s *Snapshot) AddYear(year int) {
	s.mu.Lock()
	s.years[year] = struct{}{}
	s.mu.Unlock()
}

// Years devuelve los años observados en orden descendente.
func (s *Snapshot) Years() []int {
	s.mu.RLock()
	years := make([]int, 0, len(s.years))
	for y := range s.years {
		years = append(years, y)
	}
	s.mu.RUnlock()
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// ForEach recorre las entradas crudas del snapshot. Las claves que no
// decodifican se entregan tal cual; el consumidor decide si las salta.
func (s *Snapshot) ForEach(fn func(key string, qty int)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for key, qty := range s.cells {
		fn(key, qty)
	}
}

// Cells devuelve el volcado plano del snapshot en el orden de la grilla:
// años descendentes, lotes y formatos en orden de declaración, bodega
// ascendente. Las claves que no decodifican se omiten.
func (s *Snapshot) Cells() []Cell {
	s.mu.RLock()
	out := make([]Cell, 0, len(s.cells))
	for key, qty := range s.cells {
		coord, ok := DecodeKey(key)
		if !ok {
			continue
		}
		out = append(out, Cell{Coord: coord, Qty: qty})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Coord, out[j].Coord
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Lot != b.Lot {
			return lotIndex(a.Lot) < lotIndex(b.Lot)
		}
		if a.Format != b.Format {
			return formatIndex(a.Format) < formatIndex(b.Format)
		}
		return a.WarehouseID < b.WarehouseID
	})
	return out
}

// Len devuelve el número de celdas almacenadas.
func (s *Snapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cells)
}

func lotIndex(l entity.Lot) int {
	for i, v := range entity.Lots {
		if v == l {
			return i
		}
	}
	return len(entity.Lots)
}

func formatIndex(f entity.Format) int {
	for i, v := range entity.Formats {
		if v == f {
			return i
		}
	}
	return len(entity.Formats)
}
