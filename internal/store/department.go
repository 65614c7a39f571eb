package store

import (
	"context"
	"fmt"

	"firecatalog/internal/utils"
	"firecatalog/pkg/types"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const departmentTableName = "departments"

var departmentColumns = utils.StructTagValues(types.Department{})

type DepartmentRepository struct {
	pool *pgxpool.Pool
}

func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

func (r *DepartmentRepository) Departments(ctx context.Context) ([]*types.Department, error) {

	query, args, err := psql().Select(departmentColumns...).From(departmentTableName).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate department list query: %w", err)
	}

	var departments = make([]*types.Department, 0)
	err = pgxscan.Select(ctx, r.pool, &departments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select departments: %w", err)
	}

	return departments, nil
}

func (r *DepartmentRepository) CreateDepartment(ctx context.Context, name string) (int64, error) {

	query, args, err := psql().
		Insert(departmentTableName).
		Columns("name").
		Values(name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate insert department query: %w", err)
	}

	var departmentID int64
	err = r.pool.QueryRow(ctx, query, args...).Scan(&departmentID)
	if err != nil {
		return 0, utils.ErrorWrapOrNil(err, "failed to create department")
	}

	return departmentID, nil
}
