package domain

import (
	"errors"
	"time"
)

// TableStatus is the occupancy state of a mesa. The numeric ids are part of
// the public API contract (id_estado_mesa).
type TableStatus int

const (
	StatusDisponible TableStatus = 1
	StatusOcupada    TableStatus = 2
	StatusReservada  TableStatus = 3
)

// Valid reports whether s is one of the known statuses.
func (s TableStatus) Valid() bool {
	return s >= StatusDisponible && s <= StatusReservada
}

// Nombre returns the display name for the status, or "" for unknown ids.
func (s TableStatus) Nombre() string {
	switch s {
	case StatusDisponible:
		return "Disponible"
	case StatusOcupada:
		return "Ocupada"
	case StatusReservada:
		return "Reservada"
	}
	return ""
}

var ErrMesaNotFound = errors.New("mesa no encontrada")

// Mesa is a physical restaurant table. Status transitions are deliberately
// unrestricted: any status may follow any other, and concurrent updates
// resolve last-write-wins in the store.
type Mesa struct {
	ID             int         `json:"id_mesa" bson:"_id"`
	Numero         int         `json:"numero" bson:"numero"`
	Capacidad      int         `json:"capacidad" bson:"capacidad"`
	Estado         TableStatus `json:"id_estado_mesa" bson:"id_estado_mesa"`
	EstadoNombre   string      `json:"estado_nombre,omitempty" bson:"-"`
	Ubicacion      string      `json:"ubicacion" bson:"ubicacion"`
	Activa         bool        `json:"activa" bson:"activa"`
	PedidosActivos int         `json:"pedidos_activos" bson:"pedidos_activos"`
	UpdatedAt      time.Time   `json:"fecha_actualizacion" bson:"fecha_actualizacion"`
	UpdatedBy      int         `json:"-" bson:"actualizado_por"`
}

// TableStatistics is the aggregate view over all active mesas. It is always
// derived, never stored.
type TableStatistics struct {
	Total       int `json:"total"`
	Disponibles int `json:"disponibles"`
	Ocupadas    int `json:"ocupadas"`
	Reservadas  int `json:"reservadas"`
}

// StatisticsFromList folds a table list into aggregate counts. This is the
// client-side computation path; it must agree with the store aggregation.
func StatisticsFromList(mesas []*Mesa) TableStatistics {
	var stats TableStatistics
	for _, m := range mesas {
		stats.Total++
		switch m.Estado {
		case StatusDisponible:
			stats.Disponibles++
		case StatusOcupada:
			stats.Ocupadas++
		case StatusReservada:
			stats.Reservadas++
		}
	}
	return stats
}
