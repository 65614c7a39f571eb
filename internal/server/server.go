package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"firecatalog/internal/storage"
	"firecatalog/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

// TruckStore is the record-store surface the API needs for apparatus.
type TruckStore interface {
	Trucks(ctx context.Context, filters types.TruckFilters) ([]*types.TruckRow, error)
	Truck(ctx context.Context, truckID int64) (*types.TruckRow, error)
	CreateTruck(ctx context.Context, params types.CreateTruckParams) (int64, error)
}

type DepartmentStore interface {
	Departments(ctx context.Context) ([]*types.Department, error)
	CreateDepartment(ctx context.Context, name string) (int64, error)
}

type TruckImageStore interface {
	ImagesByTruckID(ctx context.Context, truckID int64) ([]types.TruckImage, error)
	CreateTruckImage(ctx context.Context, truckID int64, imageURL string) error
}

// ImageStorage is the object-store surface for photo blobs.
type ImageStorage interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Get(ctx context.Context, key string) (*storage.Object, error)
}

type Service struct {
	logger      *logrus.Logger
	config      *types.Config
	trucks      TruckStore
	departments DepartmentStore
	truckImages TruckImageStore
	images      ImageStorage

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	trucks TruckStore,
	departments DepartmentStore,
	truckImages TruckImageStore,
	images ImageStorage,
) *Service {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,

		trucks:      trucks,
		departments: departments,
		truckImages: truckImages,
		images:      images,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)
	r.Use(s.CORS)

	r.HandleFunc("/api/departments", s.handleListDepartments, http.MethodGet)
	r.HandleFunc("/api/departments", s.handleCreateDepartment, http.MethodPost)

	r.HandleFunc("/api/trucks", s.handleListTrucks, http.MethodGet)
	r.HandleFunc("/api/trucks", s.handleCreateTruck, http.MethodPost)
	r.HandleFunc("/api/trucks/:id", s.handleGetTruck, http.MethodGet)
	r.HandleFunc("/api/trucks/:id/upload", s.handleUploadTruckImage, http.MethodPost)

	r.HandleFunc("/images/:key", s.handleServeImage, http.MethodGet)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
