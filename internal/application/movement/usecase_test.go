package movement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/oleo-stock/internal/application/dto"
	"github.com/tu-usuario/oleo-stock/internal/application/movement"
	"github.com/tu-usuario/oleo-stock/internal/domain"
	"github.com/tu-usuario/oleo-stock/internal/domain/entity"
	"github.com/tu-usuario/oleo-stock/internal/domain/repository"
)

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (f *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeMovementRepo) ListByTeam(_ context.Context, teamID string, filter repository.MovementFilter) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.movements {
		if m.TeamID != teamID {
			continue
		}
		if filter.Year != 0 && m.Year != filter.Year {
			continue
		}
		if filter.Kind != "" && m.Kind != filter.Kind {
			continue
		}
		if filter.WarehouseID != "" && m.WarehouseID != filter.WarehouseID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	active map[string]bool
}

func (f *fakeWarehouseRepo) Create(_ context.Context, _ *entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) GetByID(_ context.Context, _, id string) (*entity.Warehouse, error) {
	active, ok := f.active[id]
	if !ok {
		return nil, nil
	}
	return &entity.Warehouse{ID: id, Name: id, Active: active}, nil
}
func (f *fakeWarehouseRepo) ListActiveByTeam(_ context.Context, _ string) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (f *fakeWarehouseRepo) Update(_ context.Context, _ *entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) Deactivate(_ context.Context, _, _ string) error { return nil }

func newUseCase(repo *fakeMovementRepo) *movement.UseCase {
	return movement.NewUseCase(repo, &fakeWarehouseRepo{active: map[string]bool{"roma": true, "cerrada": false}})
}

func registerReq(kind string, pieces int) dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		Kind: kind, Year: 2024, Lot: "A", Format: "500ml",
		WarehouseID: "roma", Pieces: pieces,
	}
}

func TestRegister_IngresoValido(t *testing.T) {
	repo := &fakeMovementRepo{}
	uc := newUseCase(repo)

	out, err := uc.Register(context.Background(), "t1", "u1", registerReq("ingress", 10))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 10, out.Pieces)
	require.Len(t, repo.movements, 1)
	assert.Equal(t, "u1", repo.movements[0].CreatedBy)
}

func TestRegister_Invalido(t *testing.T) {
	uc := newUseCase(&fakeMovementRepo{})

	cases := []dto.RegisterMovementRequest{
		registerReq("transfer", 10),  // tipo desconocido
		registerReq("egress", 0),     // piezas en cero
		registerReq("ingress", -5),   // piezas negativas
		{Kind: "ingress", Year: 2024, Lot: "D", Format: "500ml", WarehouseID: "roma", Pieces: 1},
		{Kind: "ingress", Year: 2024, Lot: "A", Format: "500ml", WarehouseID: "roma", Pieces: 1, Date: "15/01/2024"},
	}
	for _, in := range cases {
		_, err := uc.Register(context.Background(), "t1", "u1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRegister_BodegaInactivaODesconocida(t *testing.T) {
	uc := newUseCase(&fakeMovementRepo{})

	in := registerReq("ingress", 1)
	in.WarehouseID = "cerrada"
	_, err := uc.Register(context.Background(), "t1", "u1", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in.WarehouseID = "fantasma"
	_, err = uc.Register(context.Background(), "t1", "u1", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// 10 ingresos − 3 egresos de 500ml = 7 piezas = 3.5 litros.
func TestSummary_PiezasYLitros(t *testing.T) {
	repo := &fakeMovementRepo{}
	uc := newUseCase(repo)

	_, err := uc.Register(context.Background(), "t1", "u1", registerReq("ingress", 10))
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), "t1", "u1", registerReq("egress", 3))
	require.NoError(t, err)

	out, err := uc.Summary(context.Background(), "t1", repository.MovementFilter{})
	require.NoError(t, err)

	require.Len(t, out.Totals, 3, "el resumen cubre los tres formatos en orden fijo")
	assert.Equal(t, "500ml", out.Totals[0].Format)
	assert.Equal(t, 7, out.Totals[0].Pieces)
	assert.Equal(t, "3.5", out.Totals[0].Liters)
	assert.Equal(t, "3.5", out.TotalLiters)
}

func TestList_FiltraPorTipo(t *testing.T) {
	repo := &fakeMovementRepo{}
	uc := newUseCase(repo)

	_, err := uc.Register(context.Background(), "t1", "u1", registerReq("ingress", 10))
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), "t1", "u1", registerReq("egress", 3))
	require.NoError(t, err)

	out, err := uc.List(context.Background(), "t1", repository.MovementFilter{Kind: "egress"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "egress", out[0].Kind)
}
