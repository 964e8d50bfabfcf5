package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
)

// LedgerSnapshot deriva el snapshot de cantidades desde un log de
// movimientos: suma con signo de las piezas por coordenada (ingress positivo,
// egress negativo). El resultado puede ser negativo si el log lo es; el clamp
// a no-negativo ocurre recién al materializar en un Snapshot.
func LedgerSnapshot(movements []entity.Movement) map[string]int {
	totals := make(map[string]int)
	for _, m := range movements {
		totals[EncodeKey(m.Coordinate())] += m.SignedPieces()
	}
	return totals
}

// Liters convierte piezas de un formato a litros: piezas × volumen_ml / 1000.
func Liters(pieces int, format entity.Format) decimal.Decimal {
	ml := decimal.NewFromInt(int64(pieces) * entity.UnitVolumeML(format))
	return ml.Div(decimal.NewFromInt(1000))
}

// FormatTotal es el agregado de un formato en el resumen del ledger.
type FormatTotal struct {
	Format entity.Format
	Pieces int
	Liters decimal.Decimal
}

// LedgerSummary agrega el log por formato en orden de declaración, con el
// total de piezas y su equivalente en litros.
func LedgerSummary(movements []entity.Movement) []FormatTotal {
	byFormat := make(map[entity.Format]int)
	for _, m := range movements {
		byFormat[m.Format] += m.SignedPieces()
	}
	out := make([]FormatTotal, 0, len(entity.Formats))
	for _, f := range entity.Formats {
		pieces := byFormat[f]
		out = append(out, FormatTotal{
			Format: f,
			Pieces: pieces,
			Liters: Liters(pieces, f),
		})
	}
	return out
}
