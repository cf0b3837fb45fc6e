package queries

import (
	"context"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
	"freight/internal/pkg/pgerr"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GetPlacesQueryHandler returns place views ordered by street, then id.
//
// A view carries the names of all linked cities in link order and the nation
// of the primary city, with place.Unknown for anything that cannot be
// resolved.
type GetPlacesQueryHandler struct {
	db     *gorm.DB
	tracer trace.Tracer
}

func NewGetPlacesQueryHandler(db *gorm.DB) GetPlacesQueryHandler {
	return GetPlacesQueryHandler{db: db, tracer: otel.Tracer("freight/queries")}
}

func (h GetPlacesQueryHandler) Handle(ctx context.Context, query GetPlacesQuery) ([]place.View, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, span := h.tracer.Start(ctx, "GetPlaces", trace.WithAttributes(
		attribute.String("city_name", query.CityName()),
		attribute.Int("limit", query.Limit()),
	))
	defer span.End()

	views, err := h.fetch(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("places", len(views)))
	return views, nil
}

func (h GetPlacesQueryHandler) fetch(ctx context.Context, query GetPlacesQuery) ([]place.View, error) {
	pattern := "%" + likeEscaper.Replace(query.CityName()) + "%"

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.kind,
			p.street,
			array_remove(array_agg(c.name ORDER BY pc.position), NULL) AS city_names,
			(
				SELECT n.name
				FROM place_cities pn
				JOIN cities cn ON cn.id = pn.city_id
				JOIN nations n ON n.id = cn.nation_id
				WHERE pn.place_id = p.id
				ORDER BY pn.position
				LIMIT 1
			) AS nation
		FROM places p
		LEFT JOIN place_cities pc ON pc.place_id = p.id
		LEFT JOIN cities c ON c.id = pc.city_id
		WHERE ? = '' OR EXISTS (
			SELECT 1
			FROM place_cities pf
			JOIN cities cf ON cf.id = pf.city_id
			WHERE pf.place_id = p.id AND cf.name ILIKE ?
		)
		GROUP BY p.id, p.kind, p.street
		ORDER BY p.street, p.id
		LIMIT ?
	`, query.CityName(), pattern, query.Limit()).Rows()
	if err != nil {
		return nil, pgerr.Classify("get places", err)
	}
	defer rows.Close()

	views := make([]place.View, 0)
	for rows.Next() {
		var (
			rawID     uuid.UUID
			rawKind   string
			street    string
			cityNames pq.StringArray
			nation    *string
		)
		if err := rows.Scan(&rawID, &rawKind, &street, &cityNames, &nation); err != nil {
			return nil, err
		}

		id, err := kernel.UUIDOf(rawID)
		if err != nil {
			return nil, err
		}
		kind, err := kernel.ParsePlaceKind(rawKind)
		if err != nil {
			return nil, err
		}

		nationName := ""
		if nation != nil {
			nationName = *nation
		}
		views = append(views, place.NewView(kernel.EncodeReference(kind, id), street, cityNames, nationName))
	}

	if err := rows.Err(); err != nil {
		return nil, pgerr.Classify("get places", err)
	}
	return views, nil
}
