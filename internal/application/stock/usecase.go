package stock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tu-usuario/oleo-stock/internal/application/dto"
	"github.com/tu-usuario/oleo-stock/internal/domain"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/inventory"
	"github.com/tu-usuario/oleo-stock/internal/domain/repository"
	"github.com/tu-usuario/oleo-stock/pkg/logger"
)

// UseCase mantiene por equipo un snapshot en memoria del inventario como
// caché read-through/write-through del almacén: se hidrata en el primer
// acceso y las ediciones se aplican optimistas en memoria antes de persistir.
//
// Un fallo de persistencia se loggea y se devuelve al caller, pero NO revierte
// el valor optimista: la reconciliación es responsabilidad de la siguiente
// rehidratación (ventana de inconsistencia asumida, ver DESIGN.md).
type UseCase struct {
	cellRepo      repository.StockCellRepository
	warehouseRepo repository.WarehouseRepository
	log           *logger.Logger

	mu        sync.Mutex
	snapshots map[string]*inventory.Snapshot // por team_id
}

// NewUseCase construye el caso de uso.
func NewUseCase(cellRepo repository.StockCellRepository, warehouseRepo repository.WarehouseRepository, log *logger.Logger) *UseCase {
	return &UseCase{
		cellRepo:      cellRepo,
		warehouseRepo: warehouseRepo,
		log:           log,
		snapshots:     make(map[string]*inventory.Snapshot),
	}
}

// snapshot devuelve el snapshot del equipo, hidratándolo del almacén la
// primera vez. Si la carga inicial falla no se crea snapshot vacío: el error
// sube y el estado previo (inexistente) no se toca.
func (uc *UseCase) snapshot(ctx context.Context, teamID string) (*inventory.Snapshot, error) {
	uc.mu.Lock()
	snap, ok := uc.snapshots[teamID]
	uc.mu.Unlock()
	if ok {
		return snap, nil
	}

	snap = inventory.NewSnapshot()
	if err := uc.hydrateInto(ctx, teamID, snap); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	// Otro request pudo habernos ganado la hidratación; nos quedamos con el suyo.
	if existing, ok := uc.snapshots[teamID]; ok {
		snap = existing
	} else {
		uc.snapshots[teamID] = snap
	}
	uc.mu.Unlock()
	return snap, nil
}

// hydrateInto trae todas las celdas del equipo y reemplaza el contenido del
// snapshot dado.
func (uc *UseCase) hydrateInto(ctx context.Context, teamID string, snap *inventory.Snapshot) error {
	rows, err := uc.cellRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("hidratar stock del equipo %s: %w", teamID, err)
	}
	cells := make([]inventory.Cell, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, inventory.Cell{Coord: r.Coordinate(), Qty: r.Qty})
	}
	snap.Hydrate(cells)
	return nil
}

// Rehydrate recarga el snapshot del equipo desde el almacén. Si la carga
// falla, el snapshot previo queda intacto (la vista conserva su último estado
// bueno) y el error se surface.
func (uc *UseCase) Rehydrate(ctx context.Context, teamID string) error {
	snap, err := uc.snapshot(ctx, teamID)
	if err != nil {
		return err
	}
	fresh := inventory.NewSnapshot()
	if err := uc.hydrateInto(ctx, teamID, fresh); err != nil {
		return err
	}
	snap.Hydrate(fresh.Cells())
	return nil
}

// activeWarehouseIDs devuelve el conjunto visible de bodegas del equipo.
func (uc *UseCase) activeWarehouseIDs(ctx context.Context, teamID string) ([]string, error) {
	list, err := uc.warehouseRepo.ListActiveByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("listar bodegas del equipo %s: %w", teamID, err)
	}
	ids := make([]string, 0, len(list))
	for _, w := range list {
		ids = append(ids, w.ID)
	}
	return ids, nil
}

// GridFilters filtros de la grilla a nivel de aplicación.
type GridFilters struct {
	Year        int
	Search      string
	WarehouseID string
	Lot         string
	Format      string
}

// Grid construye la grilla derivada con totales para el equipo.
func (uc *UseCase) Grid(ctx context.Context, teamID string, f GridFilters) (*dto.GridResponse, error) {
	snap, err := uc.snapshot(ctx, teamID)
	if err != nil {
		return nil, err
	}
	warehouses, err := uc.activeWarehouseIDs(ctx, teamID)
	if err != nil {
		return nil, err
	}

	filters := inventory.Filters{
		Year:        f.Year,
		Search:      f.Search,
		WarehouseID: f.WarehouseID,
		Lot:         entity.Lot(f.Lot),
		Format:      entity.Format(f.Format),
	}
	rows := inventory.BuildGrid(snap.Years(), warehouses, snap, filters)
	perWarehouse := inventory.PerWarehouseTotal(snap, warehouses, f.Year)

	out := &dto.GridResponse{
		Rows:              make([]dto.GridRowResponse, 0, len(rows)),
		PerWarehouseTotal: perWarehouse,
		GrandTotal:        inventory.GrandTotal(perWarehouse),
		Years:             snap.Years(),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.GridRowResponse{
			Year:     r.Year,
			Lot:      string(r.Lot),
			Format:   string(r.Format),
			Totals:   r.Totals,
			RowTotal: r.RowTotal,
		})
	}
	return out, nil
}

// coordinateFrom valida y arma la coordenada de una petición de celda.
func (uc *UseCase) coordinateFrom(ctx context.Context, teamID string, year int, lot, format, warehouseID string) (entity.Coordinate, error) {
	coord := entity.Coordinate{
		Year:        year,
		Lot:         entity.Lot(lot),
		Format:      entity.Format(format),
		WarehouseID: warehouseID,
	}
	if warehouseID == "" || !coord.Valid() {
		return entity.Coordinate{}, domain.ErrInvalidInput
	}
	wh, err := uc.warehouseRepo.GetByID(ctx, teamID, warehouseID)
	if err != nil {
		return entity.Coordinate{}, err
	}
	if wh == nil || !wh.Active {
		return entity.Coordinate{}, domain.ErrNotFound
	}
	return coord, nil
}

// SetCell fija la cantidad de una celda: clamp, aplicación optimista en
// memoria y upsert al almacén. El error de persistencia se devuelve sin
// revertir el valor local.
func (uc *UseCase) SetCell(ctx context.Context, teamID string, in dto.SetCellRequest) (*dto.CellResponse, error) {
	coord, err := uc.coordinateFrom(ctx, teamID, in.Year, in.Lot, in.Format, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	snap, err := uc.snapshot(ctx, teamID)
	if err != nil {
		return nil, err
	}

	qty := snap.Set(coord, in.Qty)
	if err := uc.persistCell(ctx, teamID, coord, qty); err != nil {
		return nil, err
	}
	return cellResponse(coord, qty), nil
}

// AdjustCell suma un delta a la celda: Set(Get + delta), con el mismo clamp
// y la misma política de persistencia que SetCell.
func (uc *UseCase) AdjustCell(ctx context.Context, teamID string, in dto.AdjustCellRequest) (*dto.CellResponse, error) {
	coord, err := uc.coordinateFrom(ctx, teamID, in.Year, in.Lot, in.Format, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	snap, err := uc.snapshot(ctx, teamID)
	if err != nil {
		return nil, err
	}

	qty := snap.Adjust(coord, in.Delta)
	if err := uc.persistCell(ctx, teamID, coord, qty); err != nil {
		return nil, err
	}
	return cellResponse(coord, qty), nil
}

// persistCell hace el upsert de la celda y loggea el fallo con la coordenada.
func (uc *UseCase) persistCell(ctx context.Context, teamID string, coord entity.Coordinate, qty int) error {
	cell := &entity.StockCell{
		TeamID:      teamID,
		Year:        coord.Year,
		Lot:         coord.Lot,
		Format:      coord.Format,
		WarehouseID: coord.WarehouseID,
		Qty:         qty,
		UpdatedAt:   time.Now(),
	}
	if err := uc.cellRepo.Upsert(ctx, cell); err != nil {
		uc.log.Warn().Err(err).
			Str("team_id", teamID).
			Str("key", inventory.EncodeKey(coord)).
			Int("qty", qty).
			Msg("persistencia de celda falló; el valor optimista en memoria queda divergente")
		return fmt.Errorf("persistir celda %s: %w", inventory.EncodeKey(coord), err)
	}
	return nil
}

// AddYear registra un año por acción explícita del usuario. El conjunto de
// años es local al proceso: no se persiste.
func (uc *UseCase) AddYear(ctx context.Context, teamID string, year int) error {
	if year < entity.MinYear || year > entity.MaxYear {
		return domain.ErrInvalidInput
	}
	snap, err := uc.snapshot(ctx, teamID)
	if err != nil {
		return err
	}
	snap.AddYear(year)
	return nil
}

func cellResponse(coord entity.Coordinate, qty int) *dto.CellResponse {
	return &dto.CellResponse{
		Year:        coord.Year,
		Lot:         string(coord.Lot),
		Format:      string(coord.Format),
		WarehouseID: coord.WarehouseID,
		Qty:         qty,
	}
}
