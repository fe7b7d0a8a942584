package api

import "github.com/starford/munro/internal/models"

// Munro is the API representation of a dataset record (aliased from the
// domain layer; records are carried through verbatim, so there is nothing
// to remap).
type Munro = models.Munro

// HealthResponse is returned by the readiness endpoint.
type HealthResponse struct {
	Status string `json:"status" example:"ok" validate:"required"`
	Munros int    `json:"munros" example:"509"`
}
