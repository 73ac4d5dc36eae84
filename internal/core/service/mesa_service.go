package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/ports"
)

// StatsCache abstracts the short-lived statistics cache (Redis).
type StatsCache interface {
	Get(ctx context.Context) (*domain.TableStatistics, error)
	Set(ctx context.Context, stats domain.TableStatistics) error
}

// MesaService implements table occupancy use cases.
type MesaService struct {
	repo  ports.MesaRepository
	cache StatsCache
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewMesaService(repo ports.MesaRepository, cache StatsCache, audit ports.AuditSink, log zerolog.Logger) *MesaService {
	return &MesaService{repo: repo, cache: cache, audit: audit, log: log}
}

func (s *MesaService) List(ctx context.Context, filter ports.ListMesasFilter) ([]*domain.Mesa, error) {
	mesas, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, m := range mesas {
		m.EstadoNombre = m.Estado.Nombre()
	}
	return mesas, nil
}

func (s *MesaService) Get(ctx context.Context, id int) (*domain.Mesa, error) {
	mesa, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	mesa.EstadoNombre = mesa.Estado.Nombre()
	return mesa, nil
}

func (s *MesaService) ByUbicacion(ctx context.Context, ubicacion string) ([]*domain.Mesa, error) {
	if ubicacion == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.List(ctx, ports.ListMesasFilter{Ubicacion: ubicacion})
}

// Statistics returns aggregate counts over active mesas. The store-side
// aggregation is authoritative; when it fails the counts are recomputed by
// folding the table list, so both paths must always agree. Results are
// cached briefly because the floor dashboard polls this endpoint.
func (s *MesaService) Statistics(ctx context.Context) (domain.TableStatistics, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return *cached, nil
		}
	}

	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("agregación de estadísticas falló, recalculando desde la lista")
		activa := true
		mesas, listErr := s.repo.List(ctx, ports.ListMesasFilter{Activa: &activa})
		if listErr != nil {
			return domain.TableStatistics{}, listErr
		}
		stats = domain.StatisticsFromList(mesas)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.log.Warn().Err(err).Msg("no se pudo guardar estadísticas en caché")
		}
	}
	return stats, nil
}

// ChangeStatus applies a table status transition. Transitions are not
// constrained to a state machine: any status may follow any other, and the
// last write to reach the store wins.
func (s *MesaService) ChangeStatus(ctx context.Context, in ports.ChangeStatusInput) (*domain.Mesa, error) {
	if in.MesaID <= 0 || in.ActingUserID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !in.Estado.Valid() {
		return nil, domain.ErrInvalidInput
	}

	mesa, err := s.repo.ChangeStatus(ctx, in.MesaID, in.Estado, in.ActingUserID)
	if err != nil {
		return nil, err
	}
	mesa.EstadoNombre = mesa.Estado.Nombre()

	s.log.Info().
		Int("id_mesa", in.MesaID).
		Int("id_estado_mesa", int(in.Estado)).
		Int("id_usuario", in.ActingUserID).
		Msg("estado de mesa actualizado")

	if s.audit != nil {
		s.audit.Enqueue(domain.AuditEvent{
			Action:    domain.AuditMesaEstado,
			EntityKey: fmt.Sprintf("mesa:%d", in.MesaID),
			UserID:    in.ActingUserID,
			Detail:    mesa.Estado.Nombre(),
			Success:   true,
			Timestamp: time.Now().UTC(),
		})
	}
	return mesa, nil
}
