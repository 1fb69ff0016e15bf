package uoms

import "fmt"

// UnitOfMeasure: запись UoM в том виде, в каком она приходит из справочника.
type UnitOfMeasure struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type Kind string

const (
	KindCount  Kind = "count"
	KindWeight Kind = "weight"
	KindVolume Kind = "volume"
)

// Unit: каноническая единица. ToBase переводит 1 единицу в базовую единицу своего вида
// (граммы для веса, миллилитры для объёма, штуки для счёта).
type Unit struct {
	Name         string
	Abbreviation string
	Kind         Kind
	ToBase       float64
}

func (u Unit) IsCount() bool { return u.Kind == KindCount }

func (u Unit) String() string { return u.Name }

type UnknownUnitError struct {
	Name string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit of measure %q", e.Name)
}

type IncompatibleUnitsError struct {
	From, To Unit
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("cannot convert %s (%s) to %s (%s)", e.From.Name, e.From.Kind, e.To.Name, e.To.Kind)
}
