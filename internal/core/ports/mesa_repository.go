package ports

import (
	"context"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
)

// ListMesasFilter carries the optional query filters for listing mesas.
// Nil/empty fields match everything; set fields are conjunctive.
type ListMesasFilter struct {
	Activa    *bool
	Estado    *domain.TableStatus
	Ubicacion string
}

// MesaRepository is the table store boundary. ChangeStatus applies the
// transition unconditionally (no expected-status precondition); concurrent
// writers resolve last-write-wins in the store.
type MesaRepository interface {
	List(ctx context.Context, filter ListMesasFilter) ([]*domain.Mesa, error)
	FindByID(ctx context.Context, id int) (*domain.Mesa, error)
	ChangeStatus(ctx context.Context, id int, status domain.TableStatus, actingUserID int) (*domain.Mesa, error)
	// Statistics computes aggregate counts store-side over active mesas.
	Statistics(ctx context.Context) (domain.TableStatistics, error)
}
