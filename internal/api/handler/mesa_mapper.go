package handler

import (
	"strings"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
)

// Floor is the display grouping of mesas for the floor dashboard. It is a
// presentation concern: derived, never stored.
type Floor int

const (
	Floor1 Floor = 1
	Floor2 Floor = 2
	Floor3 Floor = 3
)

// FloorOf derives the floor for a mesa: explicit location text wins, with
// id-range buckets as fallback when the text is absent or ambiguous. The
// ranges mirror the seeded layout (12 mesas per floor).
func FloorOf(m *domain.Mesa) Floor {
	loc := strings.ToLower(m.Ubicacion)
	switch {
	case strings.Contains(loc, "primer"):
		return Floor1
	case strings.Contains(loc, "segundo"):
		return Floor2
	case strings.Contains(loc, "terraza"), strings.Contains(loc, "tercer"):
		return Floor3
	}
	switch {
	case m.ID <= 12:
		return Floor1
	case m.ID <= 24:
		return Floor2
	}
	return Floor3
}

// floorAlias resolves a path parameter to a floor, when it names one.
func floorAlias(s string) (Floor, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "primer piso", "primer-piso":
		return Floor1, true
	case "2", "segundo piso", "segundo-piso":
		return Floor2, true
	case "3", "tercer piso", "tercer-piso", "terraza":
		return Floor3, true
	}
	return 0, false
}

func filterByFloor(mesas []*domain.Mesa, floor Floor) []*domain.Mesa {
	out := make([]*domain.Mesa, 0, len(mesas))
	for _, m := range mesas {
		if FloorOf(m) == floor {
			out = append(out, m)
		}
	}
	return out
}
