package usableweights

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Spok95/canna-erp/internal/domain/names"
)

// Entry: сколько граммов продукта уходит на одну штуку данной формы/модификации.
type Entry struct {
	ProductForm     string  `json:"product_form" mapstructure:"product_form"`
	ProductModifier string  `json:"product_modifier" mapstructure:"product_modifier"`
	Grams           float64 `json:"grams" mapstructure:"grams"`
}

type Lookup interface {
	UsableWeight(form, modifier string) (float64, error)
}

type UnknownUsableWeightError struct {
	Form, Modifier string
}

func (e *UnknownUsableWeightError) Error() string {
	return fmt.Sprintf("no usable weight for product form %q, modifier %q", e.Form, e.Modifier)
}

var ErrInvalidEntry = errors.New("invalid usable weight entry")

// Defaults: значения, с которыми работала форма создания упаковки.
func Defaults() []Entry {
	return []Entry{
		{ProductForm: "Preroll", ProductModifier: "Single", Grams: 0.5},
		{ProductForm: "Preroll", ProductModifier: "TwoPack", Grams: 1},
		{ProductForm: "Preroll", ProductModifier: "10-Pack", Grams: 5},
		{ProductForm: "Hash", ProductModifier: "Packaged", Grams: 1},
	}
}

// Table: форма -> модификация -> граммы. Ключи сравниваются без учёта регистра,
// исходное написание сохраняется для выдачи списком. Таблица неизменяема после сборки.
type Table struct {
	byKey map[string]map[string]Entry
}

func NewTable(entries []Entry) (*Table, error) {
	t := &Table{byKey: make(map[string]map[string]Entry)}
	for i, e := range entries {
		if err := validate(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		t.set(e)
	}
	return t, nil
}

func validate(e Entry) error {
	if names.Key(e.ProductForm) == "" || names.Key(e.ProductModifier) == "" {
		return fmt.Errorf("%w: product form and modifier are required", ErrInvalidEntry)
	}
	if e.Grams < 0 || math.IsNaN(e.Grams) || math.IsInf(e.Grams, 0) {
		return fmt.Errorf("%w: grams must be a finite number >= 0, got %v", ErrInvalidEntry, e.Grams)
	}
	return nil
}

func (t *Table) set(e Entry) {
	fk := names.Key(e.ProductForm)
	if t.byKey[fk] == nil {
		t.byKey[fk] = make(map[string]Entry)
	}
	t.byKey[fk][names.Key(e.ProductModifier)] = e
}

func (t *Table) UsableWeight(form, modifier string) (float64, error) {
	if mods, ok := t.byKey[names.Key(form)]; ok {
		if e, ok := mods[names.Key(modifier)]; ok {
			return e.Grams, nil
		}
	}
	return 0, &UnknownUsableWeightError{Form: form, Modifier: modifier}
}

// Merge возвращает новую таблицу: записи over перекрывают записи t.
func (t *Table) Merge(over []Entry) (*Table, error) {
	return NewTable(append(t.Entries(), over...))
}

// Entries отсортированы по форме и модификации.
func (t *Table) Entries() []Entry {
	var out []Entry
	for _, mods := range t.byKey {
		for _, e := range mods {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := names.Key(out[i].ProductForm), names.Key(out[j].ProductForm)
		if fi != fj {
			return fi < fj
		}
		return names.Key(out[i].ProductModifier) < names.Key(out[j].ProductModifier)
	})
	return out
}

func (t *Table) Len() int {
	n := 0
	for _, mods := range t.byKey {
		n += len(mods)
	}
	return n
}
