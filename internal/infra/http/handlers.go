package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/Spok95/canna-erp/internal/domain/packages"
	"github.com/Spok95/canna-erp/internal/domain/uoms"
	"github.com/Spok95/canna-erp/internal/domain/usableweights"
	"github.com/go-playground/validator/v10"
)

const maxUploadBytes = 5 << 20

type api struct {
	deps     Deps
	validate *validator.Validate
}

type packageDTO struct {
	ID       int64               `json:"id"`
	Tag      string              `json:"tag" validate:"max=64"`
	Quantity float64             `json:"quantity" validate:"gte=0"`
	UoM      *uoms.UnitOfMeasure `json:"uom"`
	Item     *packages.Item      `json:"item"`
}

type splitPreviewRequest struct {
	ParentPackage *packageDTO         `json:"parent_package"`
	Item          *packages.Item      `json:"item"`
	UoM           *uoms.UnitOfMeasure `json:"uom"`
	// nil: поле количества ещё не заполнено
	Quantity *float64 `json:"quantity" validate:"omitempty,gte=0"`
}

func (a *api) splitPreview(w http.ResponseWriter, r *http.Request) {
	var req splitPreviewRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: CodeBadRequest, Message: "malformed JSON body"})
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.fail(w, r, err)
		return
	}

	var parent *packages.Package
	if req.ParentPackage != nil {
		parent = &packages.Package{
			ID:       req.ParentPackage.ID,
			Tag:      req.ParentPackage.Tag,
			Quantity: req.ParentPackage.Quantity,
			UoM:      req.ParentPackage.UoM,
			Item:     req.ParentPackage.Item,
		}
	}
	qty := math.NaN()
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	preview, err := a.deps.Converter.Preview(parent, req.Item, req.UoM, qty)
	if a.deps.Metrics != nil {
		a.deps.Metrics.ObserveSplit(err)
	}
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

func (a *api) listUoMs(w http.ResponseWriter, r *http.Request) {
	list, err := a.deps.UoMs.List(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	type uomView struct {
		uoms.UnitOfMeasure
		Kind uoms.Kind `json:"kind,omitempty"`
	}
	out := make([]uomView, 0, len(list))
	for _, u := range list {
		v := uomView{UnitOfMeasure: u}
		if unit, err := uoms.ResolveUoM(u); err == nil {
			v.Kind = unit.Kind
		}
		out = append(out, v)
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *api) listWeights(w http.ResponseWriter, _ *http.Request) {
	entries := a.deps.Weights.Current().Entries()
	if entries == nil {
		entries = []usableweights.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (a *api) exportWeights(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := usableweights.WriteXLSX(&buf, a.deps.Weights.Current().Entries()); err != nil {
		a.fail(w, r, err)
		return
	}
	name := fmt.Sprintf("usable_weights_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	_, _ = w.Write(buf.Bytes())
}

// importWeights заменяет таблицу целиком содержимым xlsx из тела запроса.
func (a *api) importWeights(w http.ResponseWriter, r *http.Request) {
	entries, err := usableweights.ReadXLSX(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err == nil {
		err = a.applyWeights(r, entries)
	}
	if a.deps.Metrics != nil {
		a.deps.Metrics.ObserveWeightImport("http", err)
	}
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.deps.Log.Info("usable weights imported", "count", len(entries), "request_id", RequestID(r.Context()))
	writeJSON(w, http.StatusOK, map[string]int{"count": len(entries)})
}

func (a *api) applyWeights(r *http.Request, entries []usableweights.Entry) error {
	table, err := usableweights.NewTable(entries)
	if err != nil {
		return err
	}
	if a.deps.WeightStore != nil {
		if err := a.deps.WeightStore.ReplaceAll(r.Context(), table.Entries()); err != nil {
			return fmt.Errorf("persist usable weights: %w", err)
		}
	}
	a.deps.Weights.Replace(table)
	return nil
}
