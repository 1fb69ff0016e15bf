package bot

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Spok95/canna-erp/internal/domain/packages"
	"github.com/Spok95/canna-erp/internal/domain/uoms"
	"github.com/Spok95/canna-erp/internal/domain/usableweights"
)

const splitUsage = "Формат: /split <остаток родителя> <ед. родителя> <кол-во> <ед. новой упаковки> [форма модификация]\n" +
	"Пример: /split 100 g 10 each Preroll Single"

const helpText = "Расчёт списания с родительской упаковки при создании новой.\n\n" +
	splitUsage + "\n\n" +
	"/uoms — справочник единиц\n" +
	"/weights — таблица usable weight (xlsx)\n" +
	"Администратор может прислать xlsx, чтобы заменить таблицу."

type splitArgs struct {
	ParentQty       float64
	ParentUoM       string
	ChildQty        float64
	ChildUoM        string
	ProductForm     string
	ProductModifier string
}

func (a splitArgs) parent() *packages.Package {
	return &packages.Package{Quantity: a.ParentQty, UoM: &uoms.UnitOfMeasure{Name: a.ParentUoM}}
}

func (a splitArgs) childUoM() *uoms.UnitOfMeasure {
	return &uoms.UnitOfMeasure{Name: a.ChildUoM}
}

func (a splitArgs) item() *packages.Item {
	if a.ProductForm == "" {
		return nil
	}
	return &packages.Item{ProductForm: a.ProductForm, ProductModifier: a.ProductModifier}
}

func parseQty(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("Некорректное количество: %q", s)
	}
	return v, nil
}

func parseSplitArgs(raw string) (splitArgs, error) {
	f := strings.Fields(raw)
	if len(f) != 4 && len(f) != 6 {
		return splitArgs{}, errors.New("Нужно 4 или 6 аргументов.")
	}
	var (
		a   splitArgs
		err error
	)
	if a.ParentQty, err = parseQty(f[0]); err != nil {
		return splitArgs{}, err
	}
	a.ParentUoM = f[1]
	if a.ChildQty, err = parseQty(f[2]); err != nil {
		return splitArgs{}, err
	}
	a.ChildUoM = f[3]
	if len(f) == 6 {
		a.ProductForm, a.ProductModifier = f[4], f[5]
	}
	return a, nil
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPreview(a splitArgs, p packages.SplitPreview) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Списать с родителя: %s %s\n", trimFloat(round(p.Deduction)), a.ParentUoM)
	fmt.Fprintf(&sb, "Остаток родителя: %s %s", trimFloat(round(p.NewParentQuantity)), a.ParentUoM)
	if p.Overdrawn {
		sb.WriteString("\n⚠️ Остатка родителя не хватает, упаковку создать нельзя.")
	}
	return sb.String()
}

// round до 4 знаков: как показывает форма
func round(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 4, 64), 64)
	return r
}

func formatUoMs(list []uoms.UnitOfMeasure) string {
	if len(list) == 0 {
		return "Справочник единиц пуст."
	}
	var sb strings.Builder
	sb.WriteString("Единицы измерения:\n")
	for _, u := range list {
		kind := "?"
		if unit, err := uoms.ResolveUoM(u); err == nil {
			kind = string(unit.Kind)
		}
		fmt.Fprintf(&sb, "• %s (%s) — %s\n", u.Name, u.Abbreviation, kind)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func describeError(err error) string {
	var (
		unknownUnit   *uoms.UnknownUnitError
		incompatible  *uoms.IncompatibleUnitsError
		unknownWeight *usableweights.UnknownUsableWeightError
	)
	switch {
	case errors.As(err, &unknownUnit):
		return fmt.Sprintf("Неизвестная единица измерения: %q. Список: /uoms", unknownUnit.Name)
	case errors.As(err, &incompatible):
		return fmt.Sprintf("Нельзя перевести %s в %s.", incompatible.From.Name, incompatible.To.Name)
	case errors.As(err, &unknownWeight):
		return fmt.Sprintf("Нет usable weight для %s / %s. Таблица: /weights", unknownWeight.Form, unknownWeight.Modifier)
	case errors.Is(err, packages.ErrNegativeQuantity):
		return "Количество не может быть отрицательным."
	case errors.Is(err, packages.ErrInvalidQuantity):
		return "Количество должно быть числом."
	default:
		return "Ошибка расчёта."
	}
}
