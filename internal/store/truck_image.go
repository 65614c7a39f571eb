package store

import (
	"context"
	"fmt"

	"firecatalog/internal/utils"
	"firecatalog/pkg/types"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const truckImageTableName = "truck_images"

var truckImageColumns = utils.StructTagValues(types.TruckImage{})

type TruckImageRepository struct {
	pool *pgxpool.Pool
}

func NewTruckImageRepository(pool *pgxpool.Pool) *TruckImageRepository {
	return &TruckImageRepository{pool: pool}
}

// ImagesByTruckID returns a truck's images in insertion order. Consumers
// treat the first as primary.
func (r *TruckImageRepository) ImagesByTruckID(ctx context.Context, truckID int64) ([]types.TruckImage, error) {
	query, args, err := psql().
		Select(truckImageColumns...).
		From(truckImageTableName).
		Where(squirrel.Eq{"truck_id": truckID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate truck image query: %w", err)
	}

	var images = make([]types.TruckImage, 0)
	err = pgxscan.Select(ctx, r.pool, &images, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select truck images: %w", err)
	}

	return images, nil
}

// CreateTruckImage records the association between a truck and a stored
// blob's derived URL.
func (r *TruckImageRepository) CreateTruckImage(ctx context.Context, truckID int64, imageURL string) error {
	query, args, err := psql().
		Insert(truckImageTableName).
		Columns("truck_id", "image_url").
		Values(truckID, imageURL).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert truck image query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create truck image")
}
