package ports

import (
	"context"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
)

// ChangeStatusInput carries a table status transition request.
type ChangeStatusInput struct {
	MesaID       int
	Estado       domain.TableStatus
	ActingUserID int
}

// MesaService defines table occupancy use cases.
type MesaService interface {
	List(ctx context.Context, filter ListMesasFilter) ([]*domain.Mesa, error)
	Get(ctx context.Context, id int) (*domain.Mesa, error)
	ByUbicacion(ctx context.Context, ubicacion string) ([]*domain.Mesa, error)
	Statistics(ctx context.Context) (domain.TableStatistics, error)
	ChangeStatus(ctx context.Context, in ChangeStatusInput) (*domain.Mesa, error)
}
