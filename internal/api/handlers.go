package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/munro/internal/apperr"
	"github.com/starford/munro/internal/munroservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *munroservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *munroservice.Service) *Handler {
	return &Handler{svc: svc}
}

// optString returns the query parameter as an optional value; an absent or
// empty parameter means "no criterion".
func optString(q url.Values, key string) *string {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

// optLimit parses the optional limit parameter. A present but non-numeric
// value is a validation failure, not a silently ignored one.
func optLimit(q url.Values) (*int, error) {
	raw := q.Get("limit")
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.Validationf("invalid value for limit: %s", raw)
	}
	return &n, nil
}

// heightParam parses a height path parameter in metres.
func heightParam(r *http.Request, name string) (float64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperr.Validationf("invalid height: %s", raw)
	}
	return v, nil
}

// sharedCriteria extracts the query parameters common to all list routes.
func sharedCriteria(r *http.Request) (category, orderHeightBy, orderNameBy *string, limit *int, err error) {
	q := r.URL.Query()
	limit, err = optLimit(q)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return optString(q, "hillCategory"), optString(q, "orderHeightBy"), optString(q, "orderNameBy"), limit, nil
}

// ListMunros handles GET /api/munros.
//
//	@Summary		List classified Munros with optional filtering, ordering and limit
//	@Tags			munros
//	@Produce		json
//	@Param			hillCategory	query		string	false	"Category marker"	Enums(MUN, TOP)
//	@Param			orderHeightBy	query		string	false	"Order by height"	Enums(asc, desc)
//	@Param			orderNameBy		query		string	false	"Order by name"		Enums(asc, desc)
//	@Param			limit			query		int		false	"Max results"
//	@Success		200				{array}		Munro
//	@Failure		400				{object}	errResponse
//	@Security		BearerAuth
//	@Router			/munros [get]
func (h *Handler) ListMunros(w http.ResponseWriter, r *http.Request) {
	category, orderHeightBy, orderNameBy, limit, err := sharedCriteria(r)
	if err != nil {
		writeError(w, err)
		return
	}
	munros, err := h.svc.FindAll(r.Context(), category, orderHeightBy, orderNameBy, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, munros)
}

// GetMunro handles GET /api/munros/{runningNo}.
//
//	@Summary		Get a single Munro by running number
//	@Tags			munros
//	@Produce		json
//	@Param			runningNo	path		int	true	"Running number"
//	@Success		200			{object}	Munro
//	@Failure		404			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/munros/{runningNo} [get]
func (h *Handler) GetMunro(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "runningNo")
	runningNo, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, apperr.Validationf("invalid running number: %s", raw))
		return
	}
	m, err := h.svc.FindByRunningNumber(r.Context(), runningNo)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// MinimumHeight handles GET /api/munros/minimum-height/{height}.
//
//	@Summary		List Munros at or above a height in metres
//	@Tags			munros
//	@Produce		json
//	@Param			height			path		number	true	"Minimum height (inclusive)"
//	@Param			hillCategory	query		string	false	"Category marker"	Enums(MUN, TOP)
//	@Param			orderHeightBy	query		string	false	"Order by height"	Enums(asc, desc)
//	@Param			orderNameBy		query		string	false	"Order by name"		Enums(asc, desc)
//	@Param			limit			query		int		false	"Max results"
//	@Success		200				{array}		Munro
//	@Failure		400				{object}	errResponse
//	@Security		BearerAuth
//	@Router			/munros/minimum-height/{height} [get]
func (h *Handler) MinimumHeight(w http.ResponseWriter, r *http.Request) {
	height, err := heightParam(r, "height")
	if err != nil {
		writeError(w, err)
		return
	}
	category, orderHeightBy, orderNameBy, limit, err := sharedCriteria(r)
	if err != nil {
		writeError(w, err)
		return
	}
	munros, err := h.svc.ByMinimumHeight(r.Context(), height, category, orderHeightBy, orderNameBy, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, munros)
}

// MaximumHeight handles GET /api/munros/maximum-height/{height}.
//
//	@Summary		List Munros strictly below a height in metres
//	@Tags			munros
//	@Produce		json
//	@Param			height			path		number	true	"Maximum height (exclusive)"
//	@Param			hillCategory	query		string	false	"Category marker"	Enums(MUN, TOP)
//	@Param			orderHeightBy	query		string	false	"Order by height"	Enums(asc, desc)
//	@Param			orderNameBy		query		string	false	"Order by name"		Enums(asc, desc)
//	@Param			limit			query		int		false	"Max results"
//	@Success		200				{array}		Munro
//	@Failure		400				{object}	errResponse
//	@Security		BearerAuth
//	@Router			/munros/maximum-height/{height} [get]
func (h *Handler) MaximumHeight(w http.ResponseWriter, r *http.Request) {
	height, err := heightParam(r, "height")
	if err != nil {
		writeError(w, err)
		return
	}
	category, orderHeightBy, orderNameBy, limit, err := sharedCriteria(r)
	if err != nil {
		writeError(w, err)
		return
	}
	munros, err := h.svc.ByMaximumHeight(r.Context(), height, category, orderHeightBy, orderNameBy, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, munros)
}

// HeightRange handles GET /api/munros/minimum-height/{minHeight}/maximum-height/{maxHeight}.
//
//	@Summary		List Munros within the half-open height interval [min, max)
//	@Tags			munros
//	@Produce		json
//	@Param			minHeight		path		number	true	"Minimum height (inclusive)"
//	@Param			maxHeight		path		number	true	"Maximum height (exclusive)"
//	@Param			hillCategory	query		string	false	"Category marker"	Enums(MUN, TOP)
//	@Param			orderHeightBy	query		string	false	"Order by height"	Enums(asc, desc)
//	@Param			orderNameBy		query		string	false	"Order by name"		Enums(asc, desc)
//	@Param			limit			query		int		false	"Max results"
//	@Success		200				{array}		Munro
//	@Failure		400				{object}	errResponse
//	@Security		BearerAuth
//	@Router			/munros/minimum-height/{minHeight}/maximum-height/{maxHeight} [get]
func (h *Handler) HeightRange(w http.ResponseWriter, r *http.Request) {
	minHeight, err := heightParam(r, "minHeight")
	if err != nil {
		writeError(w, err)
		return
	}
	maxHeight, err := heightParam(r, "maxHeight")
	if err != nil {
		writeError(w, err)
		return
	}
	category, orderHeightBy, orderNameBy, limit, err := sharedCriteria(r)
	if err != nil {
		writeError(w, err)
		return
	}
	munros, err := h.svc.ByHeightRange(r.Context(), minHeight, maxHeight, category, orderHeightBy, orderNameBy, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, munros)
}
