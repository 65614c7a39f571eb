package store

import (
	"context"
	"fmt"

	"firecatalog/internal/utils"
	"firecatalog/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const truckTableName = "trucks"

var truckColumns = utils.StructTagValues(types.Truck{})

type TruckRepository struct {
	pool *pgxpool.Pool
}

func NewTruckRepository(pool *pgxpool.Pool) *TruckRepository {
	return &TruckRepository{pool: pool}
}

// Trucks lists apparatus matching the given filters, newest first. An empty
// filter set lists everything; an empty result is not an error.
func (r *TruckRepository) Trucks(ctx context.Context, filters types.TruckFilters) ([]*types.TruckRow, error) {

	query, args, err := buildTruckListQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to generate truck list query: %w", err)
	}

	var trucks = make([]*types.TruckRow, 0)
	err = pgxscan.Select(ctx, r.pool, &trucks, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select trucks: %w", err)
	}

	return trucks, nil
}

func (r *TruckRepository) Truck(ctx context.Context, truckID int64) (*types.TruckRow, error) {

	columns := append(
		utils.PrefixSliceOfStrings("trucks", truckColumns),
		"departments.name AS department_name",
	)

	query, args, err := psql().Select(columns...).From(truckTableName).
		LeftJoin("departments ON trucks.department_id = departments.id").
		Where(sq.Eq{"trucks.id": truckID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate truck query: %w", err)
	}

	var truck = new(types.TruckRow)
	err = pgxscan.Get(ctx, r.pool, truck, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrTruckNotFound
	}

	return truck, nil
}

// CreateTruck inserts one truck row and returns the generated id. Nil
// capacity/height fields insert as 0; nil name/department_id insert as NULL.
func (r *TruckRepository) CreateTruck(ctx context.Context, params types.CreateTruckParams) (int64, error) {

	query, args, err := buildTruckInsertQuery(params)
	if err != nil {
		return 0, fmt.Errorf("failed to generate insert truck query: %w", err)
	}

	var truckID int64
	err = r.pool.QueryRow(ctx, query, args...).Scan(&truckID)
	if err != nil {
		return 0, utils.ErrorWrapOrNil(err, "failed to create truck")
	}

	return truckID, nil
}
