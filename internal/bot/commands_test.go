package bot

import (
	"fmt"
	"testing"

	"github.com/Spok95/canna-erp/internal/domain/packages"
	"github.com/Spok95/canna-erp/internal/domain/uoms"
	"github.com/Spok95/canna-erp/internal/domain/usableweights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSplitArgs(t *testing.T) {
	a, err := parseSplitArgs("100 g 10 each Preroll Single")
	require.NoError(t, err)
	assert.Equal(t, splitArgs{
		ParentQty: 100, ParentUoM: "g",
		ChildQty: 10, ChildUoM: "each",
		ProductForm: "Preroll", ProductModifier: "Single",
	}, a)
	require.NotNil(t, a.item())

	a, err = parseSplitArgs("  16 oz   28,3495 g ")
	require.NoError(t, err)
	assert.Equal(t, 28.3495, a.ChildQty)
	assert.Nil(t, a.item())

	for _, bad := range []string{"", "100 g 10", "100 g 10 each Preroll", "x g 1 g", "1 g -2 g",
		"nan g 1 g", "1 g inf g", "1 g nan g", "Infinity g 1 g", "1 g -inf g",
	} {
		_, err := parseSplitArgs(bad)
		assert.Error(t, err, bad)
	}
}

func TestSplitArgs_ThroughConverter(t *testing.T) {
	table, err := usableweights.NewTable(usableweights.Defaults())
	require.NoError(t, err)
	conv := packages.NewConverter(table)

	a, err := parseSplitArgs("100 g 10 each Preroll Single")
	require.NoError(t, err)
	p, err := conv.Preview(a.parent(), a.item(), a.childUoM(), a.ChildQty)
	require.NoError(t, err)

	assert.Equal(t, "Списать с родителя: 5 g\nОстаток родителя: 95 g", formatPreview(a, p))
}

func TestFormatPreview_Overdrawn(t *testing.T) {
	a := splitArgs{ParentUoM: "oz"}
	out := formatPreview(a, packages.SplitPreview{Deduction: 2.123456, NewParentQuantity: -0.5, Overdrawn: true})
	assert.Contains(t, out, "2.1235 oz")
	assert.Contains(t, out, "-0.5 oz")
	assert.Contains(t, out, "не хватает")
}

func TestDescribeError(t *testing.T) {
	assert.Contains(t, describeError(&uoms.UnknownUnitError{Name: "bu"}), `"bu"`)
	assert.Contains(t, describeError(fmt.Errorf("x: %w", &usableweights.UnknownUsableWeightError{Form: "Edible", Modifier: "Gummy"})), "Edible / Gummy")
	assert.Contains(t, describeError(&uoms.IncompatibleUnitsError{From: uoms.Grams, To: uoms.Liters}), "Grams в Liters")
	assert.Equal(t, "Количество не может быть отрицательным.", describeError(packages.ErrNegativeQuantity))
	assert.Equal(t, "Количество должно быть числом.", describeError(packages.ErrInvalidQuantity))
}

func TestFormatUoMs(t *testing.T) {
	out := formatUoMs([]uoms.UnitOfMeasure{{Name: "Grams", Abbreviation: "g"}, {Name: "Bushels", Abbreviation: "bu"}})
	assert.Contains(t, out, "• Grams (g) — weight")
	assert.Contains(t, out, "• Bushels (bu) — ?")
	assert.Equal(t, "Справочник единиц пуст.", formatUoMs(nil))
}
