package focus

import (
	"time"

	"github.com/academiahq/academia/core"
)

type Session struct {
	DurationMinutes int       `json:"duration_minutes"`
	Timestamp       time.Time `json:"timestamp"` // UTC
}

// NewSession contains information needed to record a focus session.
type NewSession struct {
	DurationMinutes int `json:"duration_minutes" validate:"required,gt=0"`
}

func (ns *NewSession) Validate() error {
	return core.Validate.Struct(ns)
}
