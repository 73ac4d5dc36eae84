package handler

import (
	"testing"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
)

func TestFloorOf(t *testing.T) {
	cases := []struct {
		name string
		mesa domain.Mesa
		want Floor
	}{
		{"explicit primer piso", domain.Mesa{ID: 30, Ubicacion: "Primer Piso"}, Floor1},
		{"explicit segundo piso", domain.Mesa{ID: 1, Ubicacion: "Segundo Piso"}, Floor2},
		{"explicit terraza", domain.Mesa{ID: 2, Ubicacion: "Terraza"}, Floor3},
		{"explicit tercer piso", domain.Mesa{ID: 2, Ubicacion: "Tercer Piso"}, Floor3},
		{"fallback low id", domain.Mesa{ID: 12, Ubicacion: "junto a la ventana"}, Floor1},
		{"fallback mid id", domain.Mesa{ID: 13, Ubicacion: ""}, Floor2},
		{"fallback high id", domain.Mesa{ID: 25, Ubicacion: ""}, Floor3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FloorOf(&tc.mesa); got != tc.want {
				t.Fatalf("expected floor %d, got %d", tc.want, got)
			}
		})
	}
}

func TestFloorAlias(t *testing.T) {
	aliases := map[string]Floor{
		"1":            Floor1,
		"primer piso":  Floor1,
		"primer-piso":  Floor1,
		"2":            Floor2,
		"Segundo Piso": Floor2,
		"3":            Floor3,
		"terraza":      Floor3,
		"TERRAZA":      Floor3,
	}
	for in, want := range aliases {
		if got, ok := floorAlias(in); !ok || got != want {
			t.Fatalf("alias %q: expected floor %d, got %d (ok=%v)", in, want, got, ok)
		}
	}

	for _, in := range []string{"", "cocina", "Terraza Norte", "4"} {
		if _, ok := floorAlias(in); ok {
			t.Fatalf("%q should not resolve to a floor", in)
		}
	}
}

func TestFilterByFloor(t *testing.T) {
	mesas := []*domain.Mesa{
		{ID: 1, Ubicacion: "Primer Piso"},
		{ID: 13, Ubicacion: ""},
		{ID: 25, Ubicacion: "Terraza"},
	}
	got := filterByFloor(mesas, Floor3)
	if len(got) != 1 || got[0].ID != 25 {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc", "abc"},
		{"Basic dXNlcg==", ""},
		{"Bearer", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := BearerToken(tc.header); got != tc.want {
			t.Fatalf("header %q: expected %q, got %q", tc.header, tc.want, got)
		}
	}
}
