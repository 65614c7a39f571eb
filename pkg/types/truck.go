package types

import (
	"time"
)

// Truck is one apparatus record as stored in the trucks table.
type Truck struct {
	ID            int64     `db:"id" json:"id"`
	Name          *string   `db:"name" json:"name"`
	DepartmentID  *int64    `db:"department_id" json:"department_id"`
	Year          int       `db:"year" json:"year"`
	ChassisMfg    string    `db:"chassis_mfg" json:"chassis_mfg"`
	BodyMfg       *string   `db:"body_mfg" json:"body_mfg"`
	AerialMfg     *string   `db:"aerial_mfg" json:"aerial_mfg"`
	PumpCapacity  int       `db:"pump_capacity" json:"pump_capacity"`
	WaterCapacity int       `db:"water_capacity" json:"water_capacity"`
	FoamACapacity int       `db:"foam_a_capacity" json:"foam_a_capacity"`
	FoamBCapacity int       `db:"foam_b_capacity" json:"foam_b_capacity"`
	AerialHeight  int       `db:"aerial_height" json:"aerial_height"`
	AerialType    *string   `db:"aerial_type" json:"aerial_type"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// TruckRow is a truck joined with the owning department's name. The name is
// nil when the truck has no department.
type TruckRow struct {
	Truck
	DepartmentName *string `db:"department_name" json:"department_name"`
}

// TruckDetail is a single truck merged with its images, insertion order.
type TruckDetail struct {
	TruckRow
	Images []TruckImage `json:"images"`
}

// CreateTruckParams carries the full optional/required field set for truck
// creation. Nil capacity/height fields default to 0 at insert; nil
// name/department_id insert as NULL.
type CreateTruckParams struct {
	Name          *string `json:"name"`
	DepartmentID  *int64  `json:"department_id"`
	Year          int     `json:"year"`
	ChassisMfg    string  `json:"chassis_mfg"`
	BodyMfg       *string `json:"body_mfg"`
	AerialMfg     *string `json:"aerial_mfg"`
	PumpCapacity  *int    `json:"pump_capacity"`
	WaterCapacity *int    `json:"water_capacity"`
	FoamACapacity *int    `json:"foam_a_capacity"`
	FoamBCapacity *int    `json:"foam_b_capacity"`
	AerialHeight  *int    `json:"aerial_height"`
	AerialType    *string `json:"aerial_type"`
}

// TruckFilters is the recognized set of optional listing filters. Values are
// raw query-string strings and pass through to the store untouched.
// Unrecognized query parameters simply never land here.
type TruckFilters struct {
	Query        string `form:"q"`
	Year         string `form:"year"`
	DepartmentID string `form:"department_id"`
	ChassisMfg   string `form:"chassis_mfg"`
	PumpMin      string `form:"pump_min"`
	TankMin      string `form:"tank_min"`
}

// Empty reports whether no filter is set.
func (f TruckFilters) Empty() bool {
	return f == TruckFilters{}
}
