package queries

import (
	"context"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/pkg/pgerr"

	"gorm.io/gorm"
)

type GetFleetStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetFleetStatusQueryHandler(db *gorm.DB) GetFleetStatusQueryHandler {
	return GetFleetStatusQueryHandler{db: db}
}

// Handle returns one entry per vehicle type in fleet.Types order, including
// types without vehicles.
func (h GetFleetStatusQueryHandler) Handle(ctx context.Context, query GetFleetStatusQuery) ([]FleetTypeStatus, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			type,
			COUNT(*) FILTER (WHERE load = 0) AS idle,
			COUNT(*) FILTER (WHERE load > 0) AS busy,
			COALESCE(SUM(capacity), 0) AS total_capacity
		FROM transport_means
		GROUP BY type
	`).Rows()
	if err != nil {
		return nil, pgerr.Classify("get fleet status", err)
	}
	defer rows.Close()

	byType := make(map[fleet.Type]FleetTypeStatus, len(fleet.Types))
	for rows.Next() {
		var (
			raw    string
			status FleetTypeStatus
		)
		if err := rows.Scan(&raw, &status.Idle, &status.Busy, &status.TotalCapacity); err != nil {
			return nil, err
		}
		typ, err := fleet.ParseType(raw)
		if err != nil {
			return nil, err
		}
		status.Type = typ
		byType[typ] = status
	}
	if err := rows.Err(); err != nil {
		return nil, pgerr.Classify("get fleet status", err)
	}

	statuses := make([]FleetTypeStatus, 0, len(fleet.Types))
	for _, typ := range fleet.Types {
		status, ok := byType[typ]
		if !ok {
			status = FleetTypeStatus{Type: typ}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
