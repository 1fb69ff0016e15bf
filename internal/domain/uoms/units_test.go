package uoms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want Unit
	}{
		{"Grams", Grams},
		{"grams", Grams},
		{"g", Grams},
		{" GRAM ", Grams},
		{"Ounces", Ounces},
		{"oz", Ounces},
		{"lbs", Pounds},
		{"Each", Each},
		{"ea", Each},
		{"Fluid Ounces", FluidOunces},
		{"fl  oz", FluidOunces},
		{"Kilograms", Kilograms},
		{"ml", Milliliters},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Resolve(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, err := Resolve("bushels")
	require.Error(t, err)

	var unknown *UnknownUnitError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "bushels", unknown.Name)
}

func TestResolveUoM_FallsBackToAbbreviation(t *testing.T) {
	got, err := ResolveUoM(UnitOfMeasure{ID: 7, Name: "Gramos", Abbreviation: "g"})
	require.NoError(t, err)
	assert.Equal(t, Grams, got)

	_, err = ResolveUoM(UnitOfMeasure{Name: "Gramos", Abbreviation: "gx"})
	var unknown *UnknownUnitError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Gramos", unknown.Name)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		qty      float64
		from, to Unit
		want     float64
	}{
		{"grams to ounces", 28.349523125, Grams, Ounces, 1},
		{"pound to ounces", 1, Pounds, Ounces, 16},
		{"kilogram to grams", 1.5, Kilograms, Grams, 1500},
		{"milligrams to grams", 250, Milligrams, Grams, 0.25},
		{"gallon to quarts", 1, Gallons, Quarts, 4},
		{"liter to milliliters", 0.75, Liters, Milliliters, 750},
		{"same unit", 3, Each, Each, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.qty, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	for _, a := range Catalog() {
		for _, b := range Catalog() {
			if a.Kind != b.Kind {
				continue
			}
			there, err := Convert(12.345, a, b)
			require.NoError(t, err)
			back, err := Convert(there, b, a)
			require.NoError(t, err)
			assert.InDelta(t, 12.345, back, 1e-9, "%s -> %s -> %s", a, b, a)
		}
	}
}

func TestConvert_Incompatible(t *testing.T) {
	_, err := Convert(1, Grams, Milliliters)
	var incompatible *IncompatibleUnitsError
	require.True(t, errors.As(err, &incompatible))
	assert.Equal(t, Grams, incompatible.From)
	assert.Equal(t, Milliliters, incompatible.To)

	_, err = Convert(1, Each, Grams)
	assert.True(t, errors.As(err, &incompatible))
}

func TestUnresolved(t *testing.T) {
	list := append(FromCatalog(), UnitOfMeasure{ID: 99, Name: "Bushels", Abbreviation: "bu"})
	bad := Unresolved(list)
	require.Len(t, bad, 1)
	assert.Equal(t, int64(99), bad[0].ID)
}
