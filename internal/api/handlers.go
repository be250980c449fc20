package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/deromanizer/core"
	"github.com/dmitrymomot/deromanizer/pkg/binder"
	"github.com/dmitrymomot/deromanizer/pkg/logger"
	"github.com/dmitrymomot/deromanizer/pkg/roman"
	"github.com/dmitrymomot/deromanizer/pkg/validator"
)

const numeralField = "numeral"

// NumeralResponse is the conversion result.
type NumeralResponse struct {
	Roman   string `json:"roman"`
	Decimal int    `json:"decimal"`
}

// ConvertRequest is the body of POST /v1/numerals.
type ConvertRequest struct {
	Numeral string `json:"numeral"`
}

// BatchRequest is the body of POST /v1/numerals/batch.
type BatchRequest struct {
	Numerals []string `json:"numerals"`
}

// BatchItem is one entry of a batch response. Exactly one of Data and Error is set.
type BatchItem struct {
	Input string            `json:"input"`
	Data  *NumeralResponse  `json:"data,omitempty"`
	Error *core.ErrorDetail `json:"error,omitempty"`
}

type pathParams struct {
	Numeral string `path:"numeral"`
}

func (a *API) convertPath(w http.ResponseWriter, r *http.Request) {
	var p pathParams
	if err := binder.Path(chi.URLParam)(r, &p); err != nil {
		a.fail(w, r, err)
		return
	}
	a.convert(w, r, p.Numeral)
}

func (a *API) convertBody(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := binder.JSON(a.maxBodySize)(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	a.convert(w, r, req.Numeral)
}

func (a *API) convert(w http.ResponseWriter, r *http.Request, raw string) {
	n, err := a.parse(raw)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	a.logger.DebugContext(r.Context(), "numeral converted", logger.Numeral(n.Roman(), n.Decimal()))
	a.render(w, r, core.JSON(NumeralResponse{Roman: n.Roman(), Decimal: n.Decimal()}))
}

func (a *API) convertBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := binder.JSON(a.maxBodySize)(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}

	if err := validator.Apply(
		validator.RequiredSlice("numerals", req.Numerals),
		validator.MaxLenSlice("numerals", req.Numerals, a.maxBatchSize),
	); err != nil {
		a.fail(w, r, err)
		return
	}

	lang := a.lang(r)
	items := make([]BatchItem, len(req.Numerals))
	failed := 0
	for i, raw := range req.Numerals {
		items[i].Input = raw

		n, err := a.parse(raw)
		if err != nil {
			_, detail := a.describe(lang, err)
			items[i].Error = &detail
			failed++
			continue
		}
		items[i].Data = &NumeralResponse{Roman: n.Roman(), Decimal: n.Decimal()}
	}

	a.logger.DebugContext(r.Context(), "batch converted",
		"total", len(items),
		"failed", failed,
	)
	a.render(w, r, core.JSON(items))
}

// parse validates raw as a numeral field and builds the value for this request.
func (a *API) parse(raw string) (*roman.Numeral, error) {
	if err := validator.ApplyFirst(
		validator.MaxLenString(numeralField, raw, a.maxNumeralLength),
		validator.RomanNumeral(numeralField, raw),
	); err != nil {
		return nil, err
	}
	return roman.New(raw)
}
