package inventory

// PerWarehouseTotal suma las cantidades del snapshot agrupadas por bodega,
// respetando el filtro de año (0 = todos). Toda bodega del conjunto visible
// aparece en el resultado, aunque su total sea 0. Las claves que no
// decodifican o apuntan a bodegas fuera del conjunto se saltan sin error.
func PerWarehouseTotal(snap *Snapshot, warehouseIDs []string, yearFilter int) map[string]int {
	totals := make(map[string]int, len(warehouseIDs))
	visible := make(map[string]struct{}, len(warehouseIDs))
	for _, id := range warehouseIDs {
		totals[id] = 0
		visible[id] = struct{}{}
	}
	snap.ForEach(func(key string, qty int) {
		coord, ok := DecodeKey(key)
		if !ok {
			return
		}
		if yearFilter != 0 && coord.Year != yearFilter {
			return
		}
		if _, ok := visible[coord.WarehouseID]; !ok {
			return
		}
		totals[coord.WarehouseID] += qty
	})
	return totals
}

// GrandTotal suma todos los totales por bodega. Por construcción coincide con
// la suma de RowTotal de la grilla sin filtrar por bodega para el mismo
// filtro de año.
func GrandTotal(perWarehouse map[string]int) int {
	total := 0
	for _, qty := range perWarehouse {
		total += qty
	}
	return total
}
