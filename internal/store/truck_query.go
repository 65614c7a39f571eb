package store

import (
	"firecatalog/internal/utils"
	"firecatalog/pkg/types"

	sq "github.com/Masterminds/squirrel"
)

// Columns the free-text filter is matched against, in bind order.
var searchColumns = []string{
	"trucks.name",
	"trucks.chassis_mfg",
	"trucks.body_mfg",
	"trucks.aerial_mfg",
	"departments.name",
}

// buildTruckListQuery turns the recognized optional filters into one
// parameterized select over trucks left-joined with departments. It is pure:
// no filter produces the unconditional query, and every present filter adds
// exactly one AND condition in a fixed order (free text, year, department,
// chassis substring, pump threshold, tank threshold), so the argument list
// always lines up with the emitted placeholders.
func buildTruckListQuery(f types.TruckFilters) (string, []any, error) {

	columns := append(
		utils.PrefixSliceOfStrings("trucks", truckColumns),
		"departments.name AS department_name",
	)

	builder := psql().
		Select(columns...).
		From(truckTableName).
		LeftJoin("departments ON trucks.department_id = departments.id")

	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		or := make(sq.Or, 0, len(searchColumns))
		for _, column := range searchColumns {
			or = append(or, sq.ILike{column: pattern})
		}
		builder = builder.Where(or)
	}

	if f.Year != "" {
		builder = builder.Where(sq.Eq{"trucks.year": f.Year})
	}

	if f.DepartmentID != "" {
		builder = builder.Where(sq.Eq{"trucks.department_id": f.DepartmentID})
	}

	if f.ChassisMfg != "" {
		builder = builder.Where(sq.ILike{"trucks.chassis_mfg": "%" + f.ChassisMfg + "%"})
	}

	if f.PumpMin != "" {
		builder = builder.Where(sq.GtOrEq{"trucks.pump_capacity": f.PumpMin})
	}

	if f.TankMin != "" {
		builder = builder.Where(sq.GtOrEq{"trucks.water_capacity": f.TankMin})
	}

	return builder.OrderBy("trucks.created_at DESC").ToSql()
}

// buildTruckInsertQuery builds the single creation insert. Nil numeric
// fields bind as 0, nil optional strings and department id bind as NULL, and
// year/chassis_mfg pass through as given.
func buildTruckInsertQuery(params types.CreateTruckParams) (string, []any, error) {
	return psql().
		Insert(truckTableName).
		Columns(
			"name",
			"department_id",
			"year",
			"chassis_mfg",
			"body_mfg",
			"aerial_mfg",
			"pump_capacity",
			"water_capacity",
			"foam_a_capacity",
			"foam_b_capacity",
			"aerial_height",
			"aerial_type",
		).
		Values(
			params.Name,
			params.DepartmentID,
			params.Year,
			params.ChassisMfg,
			params.BodyMfg,
			params.AerialMfg,
			utils.PtrInt(params.PumpCapacity),
			utils.PtrInt(params.WaterCapacity),
			utils.PtrInt(params.FoamACapacity),
			utils.PtrInt(params.FoamBCapacity),
			utils.PtrInt(params.AerialHeight),
			params.AerialType,
		).
		Suffix("RETURNING id").
		ToSql()
}
