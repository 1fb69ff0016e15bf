package packages

import (
	"errors"

	"github.com/Spok95/canna-erp/internal/domain/uoms"
)

type Item struct {
	ID              int64  `json:"id"`
	Description     string `json:"description"`
	ProductForm     string `json:"product_form"`
	ProductModifier string `json:"product_modifier"`
}

// Package: упаковка с тегом. Item у родительской упаковки нужен только
// для перевода веса в штуки, когда сам родитель учитывается в штуках.
type Package struct {
	ID       int64               `json:"id"`
	Tag      string              `json:"tag"`
	Quantity float64             `json:"quantity"`
	UoM      *uoms.UnitOfMeasure `json:"uom"`
	Item     *Item               `json:"item,omitempty"`
}

// SplitPreview: то, что показывается в форме создания дочерней упаковки.
type SplitPreview struct {
	Deduction         float64 `json:"deduction"`
	NewParentQuantity float64 `json:"new_parent_quantity"`
	ParentUoM         string  `json:"parent_uom"`
	Overdrawn         bool    `json:"overdrawn"`
}

var (
	ErrNegativeQuantity     = errors.New("child quantity must be >= 0")
	ErrInvalidQuantity      = errors.New("quantity must be a finite number")
	ErrInsufficientQuantity = errors.New("parent package quantity would drop below zero")
)
