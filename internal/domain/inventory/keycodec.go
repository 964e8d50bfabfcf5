package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
)

// keySep separa los cuatro campos de la clave plana. Los IDs de bodega están
// restringidos al alfabeto slug [a-z0-9-], por lo que "_" nunca colisiona.
const keySep = "_"

// EncodeKey codifica una coordenada como clave plana "year_lot_format_warehouse".
// Determinista y sin pérdida para toda coordenada bien formada.
func EncodeKey(c entity.Coordinate) string {
	return fmt.Sprintf("%d%s%s%s%s%s%s", c.Year, keySep, c.Lot, keySep, c.Format, keySep, c.WarehouseID)
}

// DecodeKey decodifica una clave plana. Devuelve ok=false (nunca panic) si la
// clave no tiene cuatro partes, el año no es un entero positivo o el lote o
// el formato no pertenecen a sus conjuntos cerrados.
func DecodeKey(key string) (entity.Coordinate, bool) {
	parts := strings.Split(key, keySep)
	if len(parts) != 4 {
		return entity.Coordinate{}, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year <= 0 {
		return entity.Coordinate{}, false
	}
	lot := entity.Lot(parts[1])
	format := entity.Format(parts[2])
	if !entity.ValidLot(lot) || !entity.ValidFormat(format) {
		return entity.Coordinate{}, false
	}
	return entity.Coordinate{
		Year:        year,
		Lot:         lot,
		Format:      format,
		WarehouseID: parts[3],
	}, true
}
