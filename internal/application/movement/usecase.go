package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/oleo-stock/internal/application/dto"
	"github.com/tu-usuario/oleo-stock/internal/domain"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/inventory"
	"github.com/tu-usuario/oleo-stock/internal/domain/repository"
)

// UseCase registra y consulta el log append-only de movimientos (variante
// ledger del inventario). El snapshot de cantidades se deriva del log, nunca
// se edita directo.
type UseCase struct {
	movementRepo  repository.MovementRepository
	warehouseRepo repository.WarehouseRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(movementRepo repository.MovementRepository, warehouseRepo repository.WarehouseRepository) *UseCase {
	return &UseCase{movementRepo: movementRepo, warehouseRepo: warehouseRepo}
}

// Register valida y persiste un ingreso o egreso. Piezas siempre > 0; el
// signo lo aporta el tipo al derivar el snapshot.
func (uc *UseCase) Register(ctx context.Context, teamID, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidKind(in.Kind) || in.Pieces <= 0 {
		return nil, domain.ErrInvalidInput
	}
	coord := entity.Coordinate{
		Year:        in.Year,
		Lot:         entity.Lot(in.Lot),
		Format:      entity.Format(in.Format),
		WarehouseID: in.WarehouseID,
	}
	if in.WarehouseID == "" || !coord.Valid() {
		return nil, domain.ErrInvalidInput
	}
	wh, err := uc.warehouseRepo.GetByID(ctx, teamID, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil || !wh.Active {
		return nil, domain.ErrNotFound
	}

	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:          uuid.New().String(),
		TeamID:      teamID,
		Date:        date,
		Operator:    in.Operator,
		Kind:        in.Kind,
		Year:        coord.Year,
		Lot:         coord.Lot,
		Format:      coord.Format,
		WarehouseID: coord.WarehouseID,
		Pieces:      in.Pieces,
		Notes:       in.Notes,
		CreatedAt:   now,
		CreatedBy:   userID,
	}
	if err := uc.movementRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// List devuelve los movimientos del equipo con filtros exactos (AND).
func (uc *UseCase) List(ctx context.Context, teamID string, filter repository.MovementFilter) ([]dto.MovementResponse, error) {
	list, err := uc.movementRepo.ListByTeam(ctx, teamID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

// Summary deriva del log el agregado por formato: piezas con signo y su
// equivalente en litros (piezas × volumen_ml / 1000).
func (uc *UseCase) Summary(ctx context.Context, teamID string, filter repository.MovementFilter) (*dto.MovementSummaryResponse, error) {
	list, err := uc.movementRepo.ListByTeam(ctx, teamID, filter)
	if err != nil {
		return nil, err
	}
	movements := make([]entity.Movement, 0, len(list))
	for _, m := range list {
		movements = append(movements, *m)
	}

	summary := inventory.LedgerSummary(movements)
	out := &dto.MovementSummaryResponse{
		Totals: make([]dto.FormatTotalResponse, 0, len(summary)),
	}
	total := decimal.Zero
	for _, ft := range summary {
		out.Totals = append(out.Totals, dto.FormatTotalResponse{
			Format: string(ft.Format),
			Pieces: ft.Pieces,
			Liters: ft.Liters.String(),
		})
		total = total.Add(ft.Liters)
	}
	out.TotalLiters = total.String()
	return out, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		Date:        m.Date,
		Operator:    m.Operator,
		Kind:        m.Kind,
		Year:        m.Year,
		Lot:         string(m.Lot),
		Format:      string(m.Format),
		WarehouseID: m.WarehouseID,
		Pieces:      m.Pieces,
		Notes:       m.Notes,
	}
}
