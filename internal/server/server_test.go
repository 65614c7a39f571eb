package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"firecatalog/internal/storage"
	"firecatalog/pkg/types"

	"github.com/sirupsen/logrus"
)

type fakeTruckStore struct {
	rows        []*types.TruckRow
	lastFilters types.TruckFilters
	created     []types.CreateTruckParams
	nextID      int64
	err         error
}

func (f *fakeTruckStore) Trucks(_ context.Context, filters types.TruckFilters) ([]*types.TruckRow, error) {
	f.lastFilters = filters
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeTruckStore) Truck(_ context.Context, truckID int64) (*types.TruckRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, row := range f.rows {
		if row.ID == truckID {
			return row, nil
		}
	}
	return nil, types.ErrTruckNotFound
}

func (f *fakeTruckStore) CreateTruck(_ context.Context, params types.CreateTruckParams) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, params)
	f.nextID++
	return f.nextID, nil
}

type fakeDepartmentStore struct {
	departments []*types.Department
	created     []string
	err         error
}

func (f *fakeDepartmentStore) Departments(_ context.Context) ([]*types.Department, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.departments, nil
}

func (f *fakeDepartmentStore) CreateDepartment(_ context.Context, name string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, name)
	return int64(len(f.created)), nil
}

type imageRow struct {
	truckID  int64
	imageURL string
}

type fakeTruckImageStore struct {
	rows []imageRow
	err  error
}

func (f *fakeTruckImageStore) ImagesByTruckID(_ context.Context, truckID int64) ([]types.TruckImage, error) {
	if f.err != nil {
		return nil, f.err
	}
	images := make([]types.TruckImage, 0)
	for i, row := range f.rows {
		if row.truckID == truckID {
			images = append(images, types.TruckImage{
				ID:       int64(i + 1),
				TruckID:  row.truckID,
				ImageURL: row.imageURL,
			})
		}
	}
	return images, nil
}

func (f *fakeTruckImageStore) CreateTruckImage(_ context.Context, truckID int64, imageURL string) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, imageRow{truckID: truckID, imageURL: imageURL})
	return nil
}

type storedObject struct {
	data        []byte
	contentType string
}

type fakeImageStorage struct {
	objects map[string]storedObject
	err     error
}

func newFakeImageStorage() *fakeImageStorage {
	return &fakeImageStorage{objects: make(map[string]storedObject)}
}

func (f *fakeImageStorage) Put(_ context.Context, key string, body io.Reader, contentType string) error {
	if f.err != nil {
		return f.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = storedObject{data: data, contentType: contentType}
	return nil
}

func (f *fakeImageStorage) Get(_ context.Context, key string) (*storage.Object, error) {
	if f.err != nil {
		return nil, f.err
	}
	obj, ok := f.objects[key]
	if !ok {
		return nil, types.ErrObjectNotFound
	}
	return &storage.Object{
		Body:          io.NopCloser(bytes.NewReader(obj.data)),
		ContentType:   obj.contentType,
		ContentLength: int64(len(obj.data)),
		ETag:          fmt.Sprintf("%q", key),
	}, nil
}

type testEnv struct {
	service     *Service
	trucks      *fakeTruckStore
	departments *fakeDepartmentStore
	truckImages *fakeTruckImageStore
	images      *fakeImageStorage
}

func newTestEnv() *testEnv {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	env := &testEnv{
		trucks:      &fakeTruckStore{},
		departments: &fakeDepartmentStore{},
		truckImages: &fakeTruckImageStore{},
		images:      newFakeImageStorage(),
	}

	config := &types.Config{ServerPort: 8080}
	env.service = New(config, logger, env.trucks, env.departments, env.truckImages, env.images)

	return env
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.service.server.Handler.ServeHTTP(rec, req)
	return rec
}
