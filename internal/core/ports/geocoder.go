package ports

import (
	"context"
	"errors"

	"mediorder/internal/core/domain/model/kernel"
)

// ErrLocationNotResolved is returned by Geocode when the external service
// responds successfully but finds no coordinates for the query.
var ErrLocationNotResolved = errors.New("location could not be resolved")

// Geocoder resolves a free-form address or pincode into coordinates.
// Implementations must bound the call with the context deadline so a slow
// upstream never stalls order matching.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (kernel.GeoPoint, error)
}
