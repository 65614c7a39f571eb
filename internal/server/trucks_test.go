package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"firecatalog/internal/utils"
	"firecatalog/pkg/types"
)

func TestListTrucksNoFilters(t *testing.T) {
	env := newTestEnv()
	env.trucks.rows = []*types.TruckRow{
		{Truck: types.Truck{ID: 2, ChassisMfg: "Pierce"}},
		{Truck: types.Truck{ID: 1, ChassisMfg: "E-ONE"}},
	}

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/trucks", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !env.trucks.lastFilters.Empty() {
		t.Fatalf("expected empty filters, got %+v", env.trucks.lastFilters)
	}

	var rows []types.TruckRow
	if err := json.NewDecoder(rec.Body).Decode(&rows); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != 2 {
		t.Fatalf("expected store order preserved, got %+v", rows)
	}
}

func TestListTrucksFilterDecoding(t *testing.T) {
	env := newTestEnv()

	rec := env.do(httptest.NewRequest(http.MethodGet,
		"/api/trucks?q=Pierce&pump_min=1000&bogus=1&tank_min=500", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	want := types.TruckFilters{Query: "Pierce", PumpMin: "1000", TankMin: "500"}
	if env.trucks.lastFilters != want {
		t.Fatalf("expected %+v, got %+v", want, env.trucks.lastFilters)
	}
}

func TestListTrucksEmptyResultIsArray(t *testing.T) {
	env := newTestEnv()
	env.trucks.rows = []*types.TruckRow{}

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/trucks", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty JSON array, got %s", body)
	}
}

func TestListTrucksStoreFailure(t *testing.T) {
	env := newTestEnv()
	env.trucks.err = errors.New("relation trucks does not exist")

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/trucks", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var payload map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] != "relation trucks does not exist" {
		t.Fatalf("expected underlying message passed through, got %q", payload["error"])
	}
}

func TestGetTruckWithImages(t *testing.T) {
	env := newTestEnv()
	env.trucks.rows = []*types.TruckRow{
		{
			Truck:          types.Truck{ID: 7, ChassisMfg: "Pierce"},
			DepartmentName: utils.StringPtr("Charlotte Fire Department"),
		},
	}
	env.truckImages.rows = []imageRow{
		{truckID: 7, imageURL: "/images/first.jpg"},
		{truckID: 9, imageURL: "/images/other.jpg"},
		{truckID: 7, imageURL: "/images/second.jpg"},
	}

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/trucks/7", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var detail types.TruckDetail
	if err := json.NewDecoder(rec.Body).Decode(&detail); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if detail.ID != 7 {
		t.Fatalf("expected truck 7, got %d", detail.ID)
	}
	if detail.DepartmentName == nil || *detail.DepartmentName != "Charlotte Fire Department" {
		t.Fatalf("expected joined department name, got %v", detail.DepartmentName)
	}
	if len(detail.Images) != 2 {
		t.Fatalf("expected 2 images, got %+v", detail.Images)
	}
	if detail.Images[0].ImageURL != "/images/first.jpg" || detail.Images[1].ImageURL != "/images/second.jpg" {
		t.Fatalf("expected insertion order, got %+v", detail.Images)
	}
}

func TestGetTruckNotFound(t *testing.T) {
	env := newTestEnv()

	for _, path := range []string{"/api/trucks/99", "/api/trucks/notanid"} {
		rec := env.do(httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rec.Code)
		}
	}
}

func TestCreateTruck(t *testing.T) {
	env := newTestEnv()

	body := strings.NewReader(`{
		"name": "Engine 4",
		"year": 2019,
		"chassis_mfg": "Pierce",
		"pump_capacity": 1500
	}`)
	rec := env.do(httptest.NewRequest(http.MethodPost, "/api/trucks", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Success bool  `json:"success"`
		ID      int64 `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Success || payload.ID != 1 {
		t.Fatalf("expected success with generated id, got %+v", payload)
	}

	if len(env.trucks.created) != 1 {
		t.Fatalf("expected exactly one insert, got %d", len(env.trucks.created))
	}
	params := env.trucks.created[0]
	if utils.PtrString(params.Name) != "Engine 4" || params.Year != 2019 || params.ChassisMfg != "Pierce" {
		t.Fatalf("unexpected params: %+v", params)
	}
	if utils.PtrInt(params.PumpCapacity) != 1500 {
		t.Fatalf("expected pump capacity 1500, got %v", params.PumpCapacity)
	}
	if params.WaterCapacity != nil || params.DepartmentID != nil {
		t.Fatalf("expected absent fields to stay nil, got %+v", params)
	}
}

func TestCreateTruckMissingFieldsTolerated(t *testing.T) {
	env := newTestEnv()

	rec := env.do(httptest.NewRequest(http.MethodPost, "/api/trucks", strings.NewReader(`{}`)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for sparse payload, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateTruckStoreFailure(t *testing.T) {
	env := newTestEnv()
	env.trucks.err = errors.New("null value in column year")

	body := strings.NewReader(`{"chassis_mfg": "Pierce"}`)
	rec := env.do(httptest.NewRequest(http.MethodPost, "/api/trucks", body))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
