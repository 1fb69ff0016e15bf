package uoms

import (
	"github.com/Spok95/canna-erp/internal/domain/names"
)

const (
	gramsPerOunce   = 28.349523125
	gramsPerPound   = 453.59237
	mlPerFluidOunce = 29.5735295625
	mlPerPint       = 473.176473
	mlPerQuart      = 946.352946
	mlPerGallon     = 3785.411784
)

var (
	Each        = Unit{Name: "Each", Abbreviation: "ea", Kind: KindCount, ToBase: 1}
	Milligrams  = Unit{Name: "Milligrams", Abbreviation: "mg", Kind: KindWeight, ToBase: 0.001}
	Grams       = Unit{Name: "Grams", Abbreviation: "g", Kind: KindWeight, ToBase: 1}
	Kilograms   = Unit{Name: "Kilograms", Abbreviation: "kg", Kind: KindWeight, ToBase: 1000}
	Ounces      = Unit{Name: "Ounces", Abbreviation: "oz", Kind: KindWeight, ToBase: gramsPerOunce}
	Pounds      = Unit{Name: "Pounds", Abbreviation: "lb", Kind: KindWeight, ToBase: gramsPerPound}
	Milliliters = Unit{Name: "Milliliters", Abbreviation: "ml", Kind: KindVolume, ToBase: 1}
	Liters      = Unit{Name: "Liters", Abbreviation: "l", Kind: KindVolume, ToBase: 1000}
	FluidOunces = Unit{Name: "Fluid Ounces", Abbreviation: "fl oz", Kind: KindVolume, ToBase: mlPerFluidOunce}
	Pints       = Unit{Name: "Pints", Abbreviation: "pt", Kind: KindVolume, ToBase: mlPerPint}
	Quarts      = Unit{Name: "Quarts", Abbreviation: "qt", Kind: KindVolume, ToBase: mlPerQuart}
	Gallons     = Unit{Name: "Gallons", Abbreviation: "gal", Kind: KindVolume, ToBase: mlPerGallon}
)

var catalog = []Unit{
	Each,
	Milligrams, Grams, Kilograms, Ounces, Pounds,
	Milliliters, Liters, FluidOunces, Pints, Quarts, Gallons,
}

// синонимы сверх Name/Abbreviation из каталога
var aliases = []struct {
	unit  Unit
	names []string
}{
	{Each, []string{"each", "unit", "units", "pcs", "pc", "count"}},
	{Milligrams, []string{"milligram"}},
	{Grams, []string{"gram", "gr", "gm"}},
	{Kilograms, []string{"kilogram", "kilo", "kilos"}},
	{Ounces, []string{"ounce"}},
	{Pounds, []string{"pound", "lbs"}},
	{Milliliters, []string{"milliliter", "millilitre", "millilitres"}},
	{Liters, []string{"liter", "litre", "litres"}},
	{FluidOunces, []string{"fluid ounce", "floz", "fl. oz", "fl.oz"}},
	{Pints, []string{"pint"}},
	{Quarts, []string{"quart"}},
	{Gallons, []string{"gallon"}},
}

var index = buildIndex()

func buildIndex() map[string]Unit {
	idx := make(map[string]Unit, len(catalog)*4)
	for _, u := range catalog {
		idx[names.Key(u.Name)] = u
		idx[names.Key(u.Abbreviation)] = u
	}
	for _, a := range aliases {
		for _, n := range a.names {
			idx[names.Key(n)] = a.unit
		}
	}
	return idx
}

// Catalog возвращает встроенные единицы в стабильном порядке.
func Catalog() []Unit {
	out := make([]Unit, len(catalog))
	copy(out, catalog)
	return out
}

// Resolve находит каноническую единицу по имени или сокращению.
func Resolve(name string) (Unit, error) {
	if u, ok := index[names.Key(name)]; ok {
		return u, nil
	}
	return Unit{}, &UnknownUnitError{Name: name}
}

// ResolveUoM сначала пробует Name, потом Abbreviation.
func ResolveUoM(u UnitOfMeasure) (Unit, error) {
	if unit, err := Resolve(u.Name); err == nil {
		return unit, nil
	}
	if u.Abbreviation != "" {
		if unit, err := Resolve(u.Abbreviation); err == nil {
			return unit, nil
		}
	}
	return Unit{}, &UnknownUnitError{Name: u.Name}
}

// Convert переводит qty из from в to. Единицы должны быть одного вида.
func Convert(qty float64, from, to Unit) (float64, error) {
	if from.Kind != to.Kind {
		return 0, &IncompatibleUnitsError{From: from, To: to}
	}
	if from == to {
		return qty, nil
	}
	return qty * from.ToBase / to.ToBase, nil
}

// ToGrams: частный случай Convert для весовых единиц.
func ToGrams(qty float64, from Unit) (float64, error) {
	return Convert(qty, from, Grams)
}
