package services

import (
	"context"
	"time"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
)

// Result tags a provider dataset with whether it came from the live upstream
// or the built-in fallback. The human-readable metadata.source string still
// rides on the dataset for the wire; in-process callers branch on Live.
type Result[T any] struct {
	Data T
	Live bool
}

func liveResult[T any](data T) Result[T]     { return Result[T]{Data: data, Live: true} }
func fallbackResult[T any](data T) Result[T] { return Result[T]{Data: data} }

// Provider contracts consumed by the builder and handlers. Fetch never returns
// an error: any upstream failure is absorbed into the fallback dataset.
type (
	AirQualitySource interface {
		Fetch(ctx context.Context) Result[models.AirQualityData]
	}
	MethaneSource interface {
		Fetch(ctx context.Context) Result[models.MethaneData]
	}
	CO2Source interface {
		Fetch(ctx context.Context) Result[models.CO2Data]
	}
	FireSource interface {
		Fetch(ctx context.Context) Result[models.FireData]
	}
	TemperatureSource interface {
		Fetch(ctx context.Context) Result[models.TemperatureData]
	}
)

// DefaultProviderTimeout bounds a single live fetch. There are no retries: a
// failed fetch falls straight through to fallback data.
const DefaultProviderTimeout = 5 * time.Second

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
