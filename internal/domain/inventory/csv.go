package inventory

import (
	"strconv"
	"strings"

	"github.com/tu-usuario/oleo-stock/internal/domain"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
)

// Columnas requeridas del CSV de stock. La variante con equipo antepone
// team_id en el export; en el import esa columna se ignora porque las filas
// siempre entran en el ámbito del equipo que importa.
var csvColumns = []string{"year", "lot", "format", "warehouse", "qty"}

// SerializeCSV serializa la colección plana coordenada → cantidad a texto
// CSV. Con teamID no vacío antepone la columna team_id. Cada campo pasa por
// el escapador de comillas.
func SerializeCSV(cells []Cell, teamID string) string {
	var b strings.Builder

	header := csvColumns
	if teamID != "" {
		header = append([]string{"team_id"}, csvColumns...)
	}
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\n")

	for _, cell := range cells {
		fields := []string{
			strconv.Itoa(cell.Coord.Year),
			string(cell.Coord.Lot),
			string(cell.Coord.Format),
			cell.Coord.WarehouseID,
			strconv.Itoa(cell.Qty),
		}
		if teamID != "" {
			fields = append([]string{teamID}, fields...)
		}
		for i, f := range fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(escapeCSV(f))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// escapeCSV envuelve el campo en comillas, doblando las internas, cuando
// contiene coma, comilla o salto de línea.
func escapeCSV(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// ParseCSV parsea texto CSV a celdas validadas. Devuelve las celdas
// aceptadas y el número de filas rechazadas. Las filas se parten por coma
// simple, sin des-escape de comillas: asimetría deliberada con el export,
// heredada del contrato original y documentada en DESIGN.md.
//
// Falla la operación completa únicamente cuando la cabecera no contiene las
// cinco columnas requeridas (domain.ErrCSVHeader); el éxito parcial es la
// norma. Filas inválidas (año o cantidad no numérica, lote o formato fuera
// del conjunto cerrado, bodega que no es slug) se saltan y se cuentan.
func ParseCSV(text string) ([]Cell, int, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, 0, domain.ErrCSVHeader
	}

	// La cabecera localiza las columnas por nombre, independiente del orden.
	idx := make(map[string]int)
	for i, name := range strings.Split(lines[0], ",") {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range csvColumns {
		if _, ok := idx[col]; !ok {
			return nil, 0, domain.ErrCSVHeader
		}
	}

	var cells []Cell
	rejected := 0
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cell, ok := parseRow(line, idx)
		if !ok {
			rejected++
			continue
		}
		cells = append(cells, cell)
	}
	return cells, rejected, nil
}

// parseRow valida una fila de datos. ok=false la marca como rechazada.
func parseRow(line string, idx map[string]int) (Cell, bool) {
	fields := strings.Split(line, ",")
	get := func(col string) (string, bool) {
		i := idx[col]
		if i >= len(fields) {
			return "", false
		}
		return strings.TrimSpace(fields[i]), true
	}

	yearStr, ok1 := get("year")
	lotStr, ok2 := get("lot")
	formatStr, ok3 := get("format")
	warehouse, ok4 := get("warehouse")
	qtyStr, ok5 := get("qty")
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return Cell{}, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return Cell{}, false
	}
	qty, err := strconv.ParseFloat(qtyStr, 64)
	if err != nil {
		return Cell{}, false
	}
	coord := entity.Coordinate{
		Year:        year,
		Lot:         entity.Lot(lotStr),
		Format:      entity.Format(formatStr),
		WarehouseID: warehouse,
	}
	if !coord.Valid() {
		return Cell{}, false
	}
	return Cell{Coord: coord, Qty: ClampQty(qty)}, true
}

// splitLines parte por saltos de línea tolerando \r\n y \n, descartando una
// última línea vacía.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
