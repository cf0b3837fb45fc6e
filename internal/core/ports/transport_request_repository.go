package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/request"
)

type TransportRequestRepository interface {
	Add(ctx context.Context, aggregate *request.TransportRequest) error

	Get(ctx context.Context, id kernel.UUID) (*request.TransportRequest, error)
}
