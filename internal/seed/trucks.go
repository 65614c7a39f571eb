package seed

import (
	"context"
	"fmt"

	"firecatalog/internal/store"
	"firecatalog/internal/utils"
	"firecatalog/pkg/types"

	"github.com/k0kubun/pp/v3"
)

// SeedTrucks inserts a spread of apparatus: engines, tankers, and aerials,
// one truck deliberately left without a department.
func SeedTrucks(ctx context.Context, repo *store.TruckRepository, departments map[string]int64) error {

	trucks := []types.CreateTruckParams{
		{
			Name:          utils.StringPtr("Engine 4"),
			DepartmentID:  departmentID(departments, "Charlotte Fire Department"),
			Year:          2019,
			ChassisMfg:    "Pierce",
			BodyMfg:       utils.StringPtr("Pierce"),
			PumpCapacity:  utils.IntPtr(1500),
			WaterCapacity: utils.IntPtr(750),
			FoamACapacity: utils.IntPtr(30),
		},
		{
			Name:          utils.StringPtr("Ladder 1"),
			DepartmentID:  departmentID(departments, "Charlotte Fire Department"),
			Year:          2021,
			ChassisMfg:    "Pierce",
			BodyMfg:       utils.StringPtr("Pierce"),
			AerialMfg:     utils.StringPtr("Pierce"),
			PumpCapacity:  utils.IntPtr(2000),
			WaterCapacity: utils.IntPtr(300),
			AerialHeight:  utils.IntPtr(107),
			AerialType:    utils.StringPtr("Rear-mount ladder"),
		},
		{
			Name:          utils.StringPtr("Tanker 7"),
			DepartmentID:  departmentID(departments, "Concord Fire Department"),
			Year:          2015,
			ChassisMfg:    "Freightliner",
			BodyMfg:       utils.StringPtr("E-ONE"),
			PumpCapacity:  utils.IntPtr(750),
			WaterCapacity: utils.IntPtr(3000),
		},
		{
			Name:          utils.StringPtr("Tower 2"),
			DepartmentID:  departmentID(departments, "Huntersville Fire Department"),
			Year:          2023,
			ChassisMfg:    "Rosenbauer",
			BodyMfg:       utils.StringPtr("Rosenbauer"),
			AerialMfg:     utils.StringPtr("Rosenbauer"),
			PumpCapacity:  utils.IntPtr(1500),
			WaterCapacity: utils.IntPtr(500),
			AerialHeight:  utils.IntPtr(101),
			AerialType:    utils.StringPtr("Mid-mount platform"),
		},
		{
			Name:          utils.StringPtr("Engine 21"),
			DepartmentID:  departmentID(departments, "Matthews Volunteer Fire Department"),
			Year:          2011,
			ChassisMfg:    "Spartan",
			BodyMfg:       utils.StringPtr("Seagrave"),
			PumpCapacity:  utils.IntPtr(1250),
			WaterCapacity: utils.IntPtr(1000),
			FoamACapacity: utils.IntPtr(20),
			FoamBCapacity: utils.IntPtr(20),
		},
		{
			// Surplus rig awaiting assignment
			Year:          1998,
			ChassisMfg:    "KME",
			BodyMfg:       utils.StringPtr("KME"),
			PumpCapacity:  utils.IntPtr(1000),
			WaterCapacity: utils.IntPtr(500),
		},
	}

	for _, truck := range trucks {
		id, err := repo.CreateTruck(ctx, truck)
		if err != nil {
			return fmt.Errorf("create truck %q: %w", utils.PtrString(truck.Name), err)
		}
		pp.Println(id, utils.PtrString(truck.Name))
	}

	return nil
}

func departmentID(departments map[string]int64, name string) *int64 {
	id, ok := departments[name]
	if !ok {
		return nil
	}
	return utils.Int64Ptr(id)
}
