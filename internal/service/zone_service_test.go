package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
	"github.com/Ompatel28102004/travel-saathi/internal/service"
	mock_service "github.com/Ompatel28102004/travel-saathi/internal/service/mocks"
	"github.com/Ompatel28102004/travel-saathi/pkg/e"
)

// --- helpers ---

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string                          { return &s }
func statusPtr(s domain.AlertStatus) *domain.AlertStatus { return &s }

func mustUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

func mustTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
}

func validBoundary() []domain.GeoPoint {
	return []domain.GeoPoint{
		{Lat: 10, Lng: 10},
		{Lat: 10, Lng: 20},
		{Lat: 20, Lng: 20},
		{Lat: 20, Lng: 10},
	}
}

// --- Create ---

func TestZoneCatalogService_Create_OK_ClosesRing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneRepository(ctrl)

	var got *domain.Zone
	zones.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, z *domain.Zone) error {
			got = z
			return nil
		}).
		Times(1)

	svc := service.NewZoneCatalogService(zones, discardLogger())

	req := domain.CreateZoneRequest{
		Name:        "Border Strip North",
		State:       "Assam",
		CountryType: domain.CountryDomestic,
		Boundary:    validBoundary(),
	}

	id, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("expected non-nil id")
	}
	if got == nil {
		t.Fatalf("expected zone passed to repo.Create")
	}
	if got.AllowedGender != domain.GenderBoth {
		t.Fatalf("expected default gender=%q got=%q", domain.GenderBoth, got.AllowedGender)
	}

	// Stored ring must be explicitly closed.
	n := len(got.Boundary)
	if n != len(req.Boundary)+1 {
		t.Fatalf("expected closed ring of %d vertices, got %d", len(req.Boundary)+1, n)
	}
	if got.Boundary[0] != got.Boundary[n-1] {
		t.Fatalf("ring not closed: first=%+v last=%+v", got.Boundary[0], got.Boundary[n-1])
	}
}

func TestZoneCatalogService_Create_AlreadyClosedRing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneRepository(ctrl)

	boundary := append(validBoundary(), domain.GeoPoint{Lat: 10, Lng: 10})

	var got *domain.Zone
	zones.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, z *domain.Zone) error {
			got = z
			return nil
		}).
		Times(1)

	svc := service.NewZoneCatalogService(zones, discardLogger())

	_, err := svc.Create(context.Background(), domain.CreateZoneRequest{
		Name:        "Closed Ring Zone",
		State:       "Sikkim",
		CountryType: domain.CountryDomestic,
		Boundary:    boundary,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Boundary) != len(boundary) {
		t.Fatalf("closing an already-closed ring must not grow it: got %d want %d", len(got.Boundary), len(boundary))
	}
}

func TestZoneCatalogService_Create_DegenerateBoundary(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneRepository(ctrl)
	// repo.Create must never be called

	svc := service.NewZoneCatalogService(zones, discardLogger())

	// Three raw vertices where the last equals the first: only two distinct
	// points survive normalization.
	_, err := svc.Create(context.Background(), domain.CreateZoneRequest{
		Name:        "Degenerate",
		State:       "Goa",
		CountryType: domain.CountryDomestic,
		Boundary: []domain.GeoPoint{
			{Lat: 10, Lng: 10},
			{Lat: 10, Lng: 20},
			{Lat: 10, Lng: 10},
		},
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, e.ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestZoneCatalogService_Create_OutOfRangeVertex(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneRepository(ctrl)
	svc := service.NewZoneCatalogService(zones, discardLogger())

	_, err := svc.Create(context.Background(), domain.CreateZoneRequest{
		Name:        "Bad Vertex",
		State:       "Kerala",
		CountryType: domain.CountryDomestic,
		Boundary: []domain.GeoPoint{
			{Lat: 10, Lng: 10},
			{Lat: 10, Lng: 20},
			{Lat: 20, Lng: 181},
		},
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestZoneCatalogService_Create_MissingName(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneRepository(ctrl)
	svc := service.NewZoneCatalogService(zones, discardLogger())

	_, err := svc.Create(context.Background(), domain.CreateZoneRequest{
		State:       "Punjab",
		CountryType: domain.CountryDomestic,
		Boundary:    validBoundary(),
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestZoneCatalogService_Create_TwoPointBoundary(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneRepository(ctrl)
	svc := service.NewZoneCatalogService(zones, discardLogger())

	_, err := svc.Create(context.Background(), domain.CreateZoneRequest{
		Name:        "Line Segment",
		State:       "Assam",
		CountryType: domain.CountryDomestic,
		Boundary: []domain.GeoPoint{
			{Lat: 10, Lng: 10},
			{Lat: 10, Lng: 20},
		},
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestZoneCatalogService_Create_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneRepository(ctrl)
	zones.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("db down")).
		Times(1)

	svc := service.NewZoneCatalogService(zones, discardLogger())

	_, err := svc.Create(context.Background(), domain.CreateZoneRequest{
		Name:        "Zone",
		State:       "Bihar",
		CountryType: domain.CountryDomestic,
		Boundary:    validBoundary(),
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// --- Get / List / Delete ---

func TestZoneCatalogService_Get_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneRepository(ctrl)

	id := mustUUID(t)
	want := &domain.Zone{ID: id, Name: "Zone A", State: "Assam", CreatedAt: mustTime(t)}

	zones.EXPECT().Get(gomock.Any(), id).Return(want, nil).Times(1)

	svc := service.NewZoneCatalogService(zones, discardLogger())

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || got.ID != id {
		t.Fatalf("unexpected zone: %+v", got)
	}
}

func TestZoneCatalogService_List_StateFilterPassedThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneRepository(ctrl)
	zones.EXPECT().
		List(gomock.Any(), "Assam").
		Return([]*domain.Zone{{ID: mustUUID(t), State: "Assam"}}, nil).
		Times(1)

	svc := service.NewZoneCatalogService(zones, discardLogger())

	list, err := svc.List(context.Background(), "Assam")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 zone got %d", len(list))
	}
}

func TestZoneCatalogService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneRepository(ctrl)

	id := mustUUID(t)
	zones.EXPECT().Delete(gomock.Any(), id).Return(e.ErrNotFound).Times(1)

	svc := service.NewZoneCatalogService(zones, discardLogger())

	err := svc.Delete(context.Background(), id)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
