//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
	"github.com/Ompatel28102004/travel-saathi/pkg/e"
)

var (
	testPool   *pgxpool.Pool
	tc         testcontainers.Container
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

// setupSchema mirrors migrations/schema.sql.
func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS zones (
			id uuid PRIMARY KEY,
			name text NOT NULL,
			state text NOT NULL DEFAULT '',
			country_type text NOT NULL DEFAULT '',
			allowed_gender text NOT NULL DEFAULT '',
			boundary jsonb NOT NULL,
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tourists (
			id uuid PRIMARY KEY,
			name text NOT NULL,
			contact text NOT NULL DEFAULT '',
			last_lat double precision,
			last_lng double precision,
			last_inside_zone boolean,
			last_zones jsonb,
			last_fix_at timestamptz
		);

		CREATE TABLE IF NOT EXISTS location_fixes (
			id uuid PRIMARY KEY,
			tourist_id uuid NOT NULL REFERENCES tourists (id) ON DELETE CASCADE,
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			inside_zone boolean NOT NULL,
			zones jsonb NOT NULL DEFAULT '[]',
			recorded_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS sos_alerts (
			id uuid PRIMARY KEY,
			tourist_id uuid NOT NULL,
			tourist_name text NOT NULL,
			tourist_contact text NOT NULL DEFAULT '',
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			address text NOT NULL DEFAULT '',
			inside_zone boolean NOT NULL,
			zones jsonb NOT NULL DEFAULT '[]',
			category text NOT NULL,
			status text NOT NULL,
			admin_response text,
			assigned_to text,
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS analysis_results (
			id uuid PRIMARY KEY,
			tourist_id uuid NOT NULL,
			tourist_name text NOT NULL,
			status text NOT NULL,
			severity integer NOT NULL DEFAULT 0,
			reasoning text NOT NULL DEFAULT '',
			created_at timestamptz NOT NULL,
			updated_at timestamptz NOT NULL
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE location_fixes, tourists, zones, sos_alerts, analysis_results`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func seedTourist(t *testing.T, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := testPool.Exec(context.Background(),
		`INSERT INTO tourists (id, name, contact) VALUES ($1, $2, $3)`,
		id, name, "+91-9000000001")
	if err != nil {
		t.Fatalf("seed tourist: %v", err)
	}
	return id
}

func squareBoundary() []domain.GeoPoint {
	return []domain.GeoPoint{
		{Lat: 10, Lng: 10},
		{Lat: 10, Lng: 20},
		{Lat: 20, Lng: 20},
		{Lat: 20, Lng: 10},
		{Lat: 10, Lng: 10},
	}
}

func TestZoneRepo_Create_RoundTripsBoundary(t *testing.T) {

	truncateAll(t)

	repo := NewZoneRepo(testPool, testLogger)

	zone := &domain.Zone{
		Name:          "Kaziranga Core",
		State:         "Assam",
		CountryType:   domain.CountryDomestic,
		AllowedGender: domain.GenderBoth,
		Boundary:      squareBoundary(),
	}

	if err := repo.Create(context.Background(), zone); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if zone.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if zone.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt set")
	}

	got, err := repo.Get(context.Background(), zone.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != zone.Name || got.State != zone.State {
		t.Fatalf("name/state mismatch: %+v", got)
	}
	if len(got.Boundary) != len(zone.Boundary) {
		t.Fatalf("boundary length mismatch got=%d want=%d", len(got.Boundary), len(zone.Boundary))
	}
	for i, p := range got.Boundary {
		if p != zone.Boundary[i] {
			t.Fatalf("boundary vertex %d mismatch got=%+v want=%+v", i, p, zone.Boundary[i])
		}
	}
}

func TestZoneRepo_List_StateFilter(t *testing.T) {

	truncateAll(t)

	repo := NewZoneRepo(testPool, testLogger)

	for _, z := range []*domain.Zone{
		{Name: "Kaziranga Core", State: "Assam", Boundary: squareBoundary()},
		{Name: "Tawang Border Strip", State: "Arunachal Pradesh", Boundary: squareBoundary()},
	} {
		if err := repo.Create(context.Background(), z); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 zones got=%d", len(all))
	}

	assam, err := repo.List(context.Background(), "Assam")
	if err != nil {
		t.Fatalf("List Assam: %v", err)
	}
	if len(assam) != 1 || assam[0].Name != "Kaziranga Core" {
		t.Fatalf("unexpected filtered list: %+v", assam)
	}
}

func TestZoneRepo_Delete_NotFoundOnSecondDelete(t *testing.T) {

	truncateAll(t)

	repo := NewZoneRepo(testPool, testLogger)

	zone := &domain.Zone{Name: "Kaziranga Core", State: "Assam", Boundary: squareBoundary()}
	if err := repo.Create(context.Background(), zone); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(context.Background(), zone.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	err := repo.Delete(context.Background(), zone.ID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestTouristRepo_AppendFix_UpdatesCurrentAndHistory(t *testing.T) {

	truncateAll(t)

	repo := NewTouristRepo(testPool, testLogger)
	touristID := seedTourist(t, "Asha Verma")

	snap := []domain.ZoneSnapshot{{
		ZoneID: uuid.New(),
		Name:   "Kaziranga Core",
		State:  "Assam",
	}}

	first := &domain.LocationFix{
		TouristID:  touristID,
		Lat:        15,
		Lng:        15,
		InsideZone: true,
		Zones:      snap,
		RecordedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
	if err := repo.AppendFix(context.Background(), first); err != nil {
		t.Fatalf("AppendFix first: %v", err)
	}

	second := &domain.LocationFix{
		TouristID:  touristID,
		Lat:        25,
		Lng:        25,
		InsideZone: false,
		RecordedAt: time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
	}
	if err := repo.AppendFix(context.Background(), second); err != nil {
		t.Fatalf("AppendFix second: %v", err)
	}

	got, err := repo.Get(context.Background(), touristID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Current == nil {
		t.Fatalf("expected current location set")
	}
	if got.Current.Lat != 25 || got.Current.Lng != 25 || got.Current.InsideZone {
		t.Fatalf("current location not the newest fix: %+v", got.Current)
	}

	fixes, err := repo.RecentFixes(context.Background(), touristID, 10)
	if err != nil {
		t.Fatalf("RecentFixes: %v", err)
	}
	if len(fixes) != 2 {
		t.Fatalf("expected 2 fixes got=%d", len(fixes))
	}
	if fixes[0].Lat != 25 || fixes[1].Lat != 15 {
		t.Fatalf("expected newest first: %+v", fixes)
	}
	if len(fixes[1].Zones) != 1 || fixes[1].Zones[0].Name != "Kaziranga Core" {
		t.Fatalf("zone snapshot not preserved in history: %+v", fixes[1].Zones)
	}
}

func TestTouristRepo_AppendFix_UnknownTourist_NothingWritten(t *testing.T) {

	truncateAll(t)

	repo := NewTouristRepo(testPool, testLogger)

	fix := &domain.LocationFix{
		TouristID: uuid.New(),
		Lat:       1,
		Lng:       1,
	}
	err := repo.AppendFix(context.Background(), fix)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}

	var cnt int64
	if err := testPool.QueryRow(context.Background(), `SELECT COUNT(*) FROM location_fixes`).Scan(&cnt); err != nil {
		t.Fatalf("count fixes: %v", err)
	}
	if cnt != 0 {
		t.Fatalf("expected empty history after failed append, got %d rows", cnt)
	}
}

func TestTouristRepo_ListWithLastLocation(t *testing.T) {

	truncateAll(t)

	repo := NewTouristRepo(testPool, testLogger)

	withFix := seedTourist(t, "Asha Verma")
	seedTourist(t, "Rohan Das")

	fix := &domain.LocationFix{TouristID: withFix, Lat: 15, Lng: 15, InsideZone: true}
	if err := repo.AppendFix(context.Background(), fix); err != nil {
		t.Fatalf("AppendFix: %v", err)
	}

	list, err := repo.ListWithLastLocation(context.Background())
	if err != nil {
		t.Fatalf("ListWithLastLocation: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 tourists got=%d", len(list))
	}
	if list[0].TouristID != withFix || list[0].Current == nil {
		t.Fatalf("expected tourist with a fix first: %+v", list[0])
	}
	if list[1].Current != nil {
		t.Fatalf("expected nil current for tourist without fixes: %+v", list[1])
	}
}

func TestAlertRepo_Create_SetsDefaults(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)

	alert := &domain.SOSAlert{
		TouristID:   uuid.New(),
		TouristName: "Asha Verma",
		Lat:         15,
		Lng:         15,
		Category:    domain.CategorySOS,
	}
	if err := repo.Create(context.Background(), alert); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if alert.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if alert.Status != domain.AlertStatusActive {
		t.Fatalf("expected status=active got=%s", alert.Status)
	}

	got, err := repo.Get(context.Background(), alert.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.AlertStatusActive || got.TouristName != "Asha Verma" {
		t.Fatalf("unexpected alert: %+v", got)
	}
	if got.AdminResponse != nil {
		t.Fatalf("expected nil admin_response, got %v", *got.AdminResponse)
	}
}

func TestAlertRepo_Transition_PreservesResponse(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)

	alert := &domain.SOSAlert{TouristID: uuid.New(), TouristName: "Asha Verma", Lat: 1, Lng: 1, Category: domain.CategorySOS}
	if err := repo.Create(context.Background(), alert); err != nil {
		t.Fatalf("Create: %v", err)
	}

	response := "team dispatched"
	got, err := repo.Transition(context.Background(), alert.ID, domain.AlertStatusInvestigating, &response, nil)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if got.Status != domain.AlertStatusInvestigating {
		t.Fatalf("expected investigating got=%s", got.Status)
	}
	if got.AdminResponse == nil || *got.AdminResponse != response {
		t.Fatalf("expected admin_response stored: %+v", got.AdminResponse)
	}

	// A later transition with a nil response keeps the earlier one.
	got, err = repo.Transition(context.Background(), alert.ID, domain.AlertStatusPendingConfirmation, nil, nil)
	if err != nil {
		t.Fatalf("Transition 2: %v", err)
	}
	if got.AdminResponse == nil || *got.AdminResponse != response {
		t.Fatalf("admin_response lost on later transition: %+v", got.AdminResponse)
	}
}

func TestAlertRepo_Transition_AfterResolve(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)

	alert := &domain.SOSAlert{TouristID: uuid.New(), TouristName: "Asha Verma", Lat: 1, Lng: 1, Category: domain.CategorySOS}
	if err := repo.Create(context.Background(), alert); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := repo.Resolve(context.Background(), alert.ID); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	response := "too late"
	_, err := repo.Transition(context.Background(), alert.ID, domain.AlertStatusInvestigating, &response, nil)
	if !errors.Is(err, e.ErrAlertResolved) {
		t.Fatalf("expected ErrAlertResolved, got: %v", err)
	}

	// Resolving again is a no-op, not an error.
	got, err := repo.Resolve(context.Background(), alert.ID)
	if err != nil {
		t.Fatalf("Resolve again: %v", err)
	}
	if got.Status != domain.AlertStatusResolved {
		t.Fatalf("expected resolved got=%s", got.Status)
	}
}

func TestAlertRepo_Transition_NotFound(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)

	_, err := repo.Transition(context.Background(), uuid.New(), domain.AlertStatusInvestigating, nil, nil)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestAlertRepo_List_StatusAndSearch(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)

	for _, a := range []*domain.SOSAlert{
		{TouristID: uuid.New(), TouristName: "Asha Verma", Lat: 1, Lng: 1, Category: domain.CategorySOS, Status: domain.AlertStatusActive},
		{TouristID: uuid.New(), TouristName: "Rohan Das", Lat: 2, Lng: 2, Category: "medical", Status: domain.AlertStatusActive},
		{TouristID: uuid.New(), TouristName: "Asha Verma", Lat: 3, Lng: 3, Category: domain.CategorySOS, Status: domain.AlertStatusResolved},
	} {
		if err := repo.Create(context.Background(), a); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	active, err := repo.List(context.Background(), domain.ListAlertsRequest{Status: domain.AlertStatusActive})
	if err != nil {
		t.Fatalf("List active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active got=%d", len(active))
	}

	asha, err := repo.List(context.Background(), domain.ListAlertsRequest{Status: domain.AlertStatusActive, Search: "asha"})
	if err != nil {
		t.Fatalf("List search: %v", err)
	}
	if len(asha) != 1 || asha[0].TouristName != "Asha Verma" {
		t.Fatalf("unexpected search result: %+v", asha)
	}
}

func TestAlertRepo_DeleteByTourist(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)

	touristID := uuid.New()
	for i := 0; i < 2; i++ {
		a := &domain.SOSAlert{TouristID: touristID, TouristName: "Asha Verma", Lat: 1, Lng: 1, Category: domain.CategorySOS}
		if err := repo.Create(context.Background(), a); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	n, err := repo.DeleteByTourist(context.Background(), touristID)
	if err != nil {
		t.Fatalf("DeleteByTourist: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted got=%d", n)
	}

	_, err = repo.DeleteByTourist(context.Background(), touristID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestAnalysisRepo_Lifecycle(t *testing.T) {

	truncateAll(t)

	repo := NewAnalysisRepo(testPool, testLogger)

	res := &domain.AnalysisResult{
		TouristID:   uuid.New(),
		TouristName: "Asha Verma",
	}
	if err := repo.Create(context.Background(), res); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Status != domain.AnalysisStatusPending {
		t.Fatalf("expected pending got=%s", res.Status)
	}

	if err := repo.Complete(context.Background(), res.ID, 7, "repeated entries into a border zone"); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	done, err := repo.ListByStatus(context.Background(), domain.AnalysisStatusCompleted, 10)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(done) != 1 {
		t.Fatalf("expected 1 completed got=%d", len(done))
	}
	if done[0].Severity != 7 || done[0].Reasoning == "" {
		t.Fatalf("unexpected completed row: %+v", done[0])
	}
	if !done[0].UpdatedAt.After(done[0].CreatedAt) {
		t.Fatalf("expected updated_at after created_at")
	}

	err = repo.Fail(context.Background(), uuid.New(), "tourist vanished")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestStatsRepo_Counts(t *testing.T) {

	truncateAll(t)

	tourists := NewTouristRepo(testPool, testLogger)
	alerts := NewAlertRepo(testPool, testLogger)
	stats := NewStatsRepo(testPool, testLogger)

	recent := seedTourist(t, "Asha Verma")
	stale := seedTourist(t, "Rohan Das")

	zoneID := uuid.New()
	snap := []domain.ZoneSnapshot{{ZoneID: zoneID, Name: "Kaziranga Core", State: "Assam"}}

	if err := tourists.AppendFix(context.Background(), &domain.LocationFix{
		TouristID:  recent,
		Lat:        15,
		Lng:        15,
		InsideZone: true,
		Zones:      snap,
		RecordedAt: time.Now().UTC().Add(-time.Hour),
	}); err != nil {
		t.Fatalf("AppendFix recent: %v", err)
	}
	if err := tourists.AppendFix(context.Background(), &domain.LocationFix{
		TouristID:  stale,
		Lat:        1,
		Lng:        1,
		RecordedAt: time.Now().UTC().Add(-72 * time.Hour),
	}); err != nil {
		t.Fatalf("AppendFix stale: %v", err)
	}

	for _, st := range []domain.AlertStatus{domain.AlertStatusActive, domain.AlertStatusActive, domain.AlertStatusResolved} {
		a := &domain.SOSAlert{TouristID: recent, TouristName: "Asha Verma", Lat: 1, Lng: 1, Category: domain.CategorySOS, Status: st}
		if err := alerts.Create(context.Background(), a); err != nil {
			t.Fatalf("Create alert: %v", err)
		}
	}

	active, err := stats.CountActiveTourists(context.Background(), 24*time.Hour)
	if err != nil {
		t.Fatalf("CountActiveTourists: %v", err)
	}
	if active != 1 {
		t.Fatalf("expected 1 active tourist got=%d", active)
	}

	byStatus, err := stats.CountAlertsByStatus(context.Background())
	if err != nil {
		t.Fatalf("CountAlertsByStatus: %v", err)
	}
	if byStatus[domain.AlertStatusActive] != 2 || byStatus[domain.AlertStatusResolved] != 1 {
		t.Fatalf("unexpected counts: %+v", byStatus)
	}

	occ, err := stats.CountZoneOccupancy(context.Background(), zoneID)
	if err != nil {
		t.Fatalf("CountZoneOccupancy: %v", err)
	}
	if occ != 1 {
		t.Fatalf("expected occupancy 1 got=%d", occ)
	}

	occNone, err := stats.CountZoneOccupancy(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("CountZoneOccupancy none: %v", err)
	}
	if occNone != 0 {
		t.Fatalf("expected occupancy 0 got=%d", occNone)
	}
}
