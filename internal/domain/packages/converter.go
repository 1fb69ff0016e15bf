package packages

import (
	"math"
	"strings"

	"github.com/Spok95/canna-erp/internal/domain/uoms"
	"github.com/Spok95/canna-erp/internal/domain/usableweights"
)

type Converter struct {
	weights usableweights.Lookup
}

func NewConverter(weights usableweights.Lookup) *Converter {
	return &Converter{weights: weights}
}

// Deduction считает, сколько списать с родительской упаковки (в её единице),
// если из неё создаётся дочерняя упаковка на childQty в единице uom.
//
// Неполный ввод (нет родителя, нет единицы, пустое поле количества, нет товара
// там, где нужен его вес) даёт 0 без ошибки: значение идёт в предпросмотр формы.
func (c *Converter) Deduction(parent *Package, item *Item, uom *uoms.UnitOfMeasure, childQty float64) (float64, error) {
	if parent == nil || blank(parent.UoM) || blank(uom) || math.IsNaN(childQty) {
		return 0, nil
	}
	if math.IsInf(childQty, 0) {
		return 0, ErrInvalidQuantity
	}
	if childQty < 0 {
		return 0, ErrNegativeQuantity
	}

	parentUnit, err := uoms.ResolveUoM(*parent.UoM)
	if err != nil {
		return 0, err
	}
	childUnit, err := uoms.ResolveUoM(*uom)
	if err != nil {
		return 0, err
	}
	if childQty == 0 {
		return 0, nil
	}

	switch {
	case parentUnit.Kind == childUnit.Kind:
		// вес/вес, объём/объём, штуки/штуки
		return uoms.Convert(childQty, childUnit, parentUnit)

	case childUnit.IsCount() && parentUnit.Kind == uoms.KindWeight:
		if item == nil {
			return 0, nil
		}
		perUnit, err := c.weights.UsableWeight(item.ProductForm, item.ProductModifier)
		if err != nil {
			return 0, err
		}
		return uoms.Convert(childQty*perUnit, uoms.Grams, parentUnit)

	case parentUnit.IsCount() && childUnit.Kind == uoms.KindWeight:
		if parent.Item == nil {
			return 0, nil
		}
		perUnit, err := c.weights.UsableWeight(parent.Item.ProductForm, parent.Item.ProductModifier)
		if err != nil {
			return 0, err
		}
		if perUnit == 0 {
			return 0, &usableweights.UnknownUsableWeightError{Form: parent.Item.ProductForm, Modifier: parent.Item.ProductModifier}
		}
		grams, err := uoms.ToGrams(childQty, childUnit)
		if err != nil {
			return 0, err
		}
		return grams / perUnit, nil
	}

	return 0, &uoms.IncompatibleUnitsError{From: childUnit, To: parentUnit}
}

func blank(u *uoms.UnitOfMeasure) bool {
	return u == nil || strings.TrimSpace(u.Name) == "" && strings.TrimSpace(u.Abbreviation) == ""
}

// Preview возвращает Deduction плюс остаток родителя после списания.
func (c *Converter) Preview(parent *Package, item *Item, uom *uoms.UnitOfMeasure, childQty float64) (SplitPreview, error) {
	d, err := c.Deduction(parent, item, uom, childQty)
	if err != nil {
		return SplitPreview{}, err
	}
	if parent == nil {
		return SplitPreview{}, nil
	}
	if math.IsNaN(parent.Quantity) || math.IsInf(parent.Quantity, 0) {
		return SplitPreview{}, ErrInvalidQuantity
	}
	p := SplitPreview{
		Deduction:         d,
		NewParentQuantity: parent.Quantity - d,
	}
	if parent.UoM != nil {
		p.ParentUoM = parent.UoM.Name
	}
	p.Overdrawn = p.NewParentQuantity < 0
	return p, nil
}

// ValidateSplit проверяет перед созданием упаковки, что остаток родителя не уходит в минус.
func ValidateSplit(p SplitPreview) error {
	if p.Overdrawn || p.NewParentQuantity < 0 {
		return ErrInsufficientQuantity
	}
	return nil
}
