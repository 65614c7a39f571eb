package seed

import (
	"context"
	"fmt"

	"firecatalog/internal/store"
)

// SeedDepartments inserts the fixture departments and returns a name to
// generated-id lookup for wiring trucks.
func SeedDepartments(ctx context.Context, repo *store.DepartmentRepository) (map[string]int64, error) {
	names := []string{
		"Charlotte Fire Department",
		"Concord Fire Department",
		"Huntersville Fire Department",
		"Matthews Volunteer Fire Department",
		"Pineville Fire Department",
	}

	ids := make(map[string]int64, len(names))
	for _, name := range names {
		id, err := repo.CreateDepartment(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("create department %q: %w", name, err)
		}
		ids[name] = id
	}

	return ids, nil
}
