package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/marketstall/market-api/internal/config"
	"github.com/marketstall/market-api/internal/db"
	"github.com/marketstall/market-api/internal/domain"
	"github.com/marketstall/market-api/internal/events"
	"github.com/marketstall/market-api/internal/metrics"
	"github.com/marketstall/market-api/internal/repository"
	"github.com/marketstall/market-api/internal/repository/dao"
	"github.com/marketstall/market-api/internal/service"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			Port:               "0",
			BaseURL:            "localhost",
			AllowedCORSDomains: []string{"http://localhost:5173"},
		},
		Gin: &config.GinConfig{Mode: "test"},
	}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenSQLite(filepath.Join(t.TempDir(), "market.db"))
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}

// newTestServer serves a market with S-SP-1 and T-GA-2 available and M-RO-3
// under maintenance.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()

	gdb := openTestDB(t)
	standDAO := dao.NewStandDAO(gdb)
	for _, s := range []struct {
		offer  domain.CategoryOffer
		number int
		status domain.StandStatus
		x, y   int
	}{
		{domain.Offers[0], 1, domain.StandAvailable, 20, 20},
		{domain.Offers[2], 2, domain.StandAvailable, 130, 20},
		{domain.Offers[3], 3, domain.StandMaintenance, 240, 120},
	} {
		_, err := standDAO.Insert(context.Background(), dao.Stand{
			ID:       domain.StandID(s.offer, s.number),
			Type:     string(s.offer.Type),
			Category: string(s.offer.Category),
			Number:   s.number,
			PriceDay: s.offer.PriceDay,
			Status:   string(s.status),
			X:        s.x,
			Y:        s.y,
		})
		require.NoError(t, err)
	}

	return NewServer(testConfig(), gdb, events.NopPublisher{}, metrics.New()), gdb
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func reservationBody(standID string) map[string]any {
	return map[string]any{
		"standId":        standID,
		"userId":         "U-1",
		"userName":       "Jan Kowalski",
		"startDate":      "2026-05-01",
		"endDate":        "2026-05-07",
		"totalAmount":    420,
		"paymentStatus":  "PAID",
		"cleaningStatus": "APPROVED",
	}
}

func TestHealthcheck(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetStands_LocationRoundTrip(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/stands", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 3)
	assert.Equal(t, map[string]any{"x": 130.0, "y": 20.0}, raw[1]["location"])
	assert.NotContains(t, raw[1], "x")

	stands := decode[[]domain.Stand](t, rec)
	assert.Equal(t, "S-SP-1", stands[0].ID)
	assert.Equal(t, domain.Location{X: 240, Y: 120}, stands[2].Location)
	assert.Equal(t, domain.StandMaintenance, stands[2].Status)
}

func TestGetStand(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/stands/T-GA-2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100, decode[domain.Stand](t, rec).PriceDay)

	rec = do(t, s, http.MethodGet, "/api/stands/S-SP-404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"stand with id=S-SP-404 not found"}`, rec.Body.String())
}

func TestCreateReservation_ReservesStand(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/reservations", reservationBody("S-SP-1"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	created := decode[map[string]any](t, rec)
	assert.Equal(t, true, created["success"])
	id, _ := created["id"].(string)
	require.True(t, strings.HasPrefix(id, "R-"))

	rec = do(t, s, http.MethodGet, "/api/stands/S-SP-1", nil)
	assert.Equal(t, domain.StandReserved, decode[domain.Stand](t, rec).Status)

	rec = do(t, s, http.MethodGet, "/api/reservations/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[domain.Reservation](t, rec)
	assert.Equal(t, 420, res.TotalAmount)
	assert.Equal(t, domain.PaymentUnpaid, res.PaymentStatus)
	assert.Equal(t, domain.CleaningPending, res.CleaningStatus)
	assert.Equal(t, "Jan Kowalski", res.UserName)
}

func TestCreateReservation_SecondClaimConflicts(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/reservations", reservationBody("S-SP-1"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/reservations", reservationBody("S-SP-1"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"stand S-SP-1 is not available"}`, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/api/reservations?standId=S-SP-1", nil)
	assert.Len(t, decode[[]domain.Reservation](t, rec), 1)
}

func TestCreateReservation_ConcurrentClaims(t *testing.T) {
	s, _ := newTestServer(t)

	const n = 6
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = do(t, s, http.MethodPost, "/api/reservations", reservationBody("T-GA-2")).Code
		}(i)
	}
	wg.Wait()

	ok, conflict := 0, 0
	for _, c := range codes {
		switch c {
		case http.StatusOK:
			ok++
		case http.StatusConflict:
			conflict++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflict)
}

func TestCreateReservation_Errors(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name     string
		modify   func(b map[string]any)
		wantCode int
	}{
		{"missing user name", func(b map[string]any) { delete(b, "userName") }, http.StatusBadRequest},
		{"bad date", func(b map[string]any) { b["startDate"] = "1 maja" }, http.StatusBadRequest},
		{"end before start", func(b map[string]any) { b["endDate"] = "2026-04-01" }, http.StatusBadRequest},
		{"amount mismatch", func(b map[string]any) { b["totalAmount"] = 1 }, http.StatusBadRequest},
		{"days overflow price", func(b map[string]any) { b["days"] = 153722867280912931; delete(b, "totalAmount") }, http.StatusBadRequest},
		{"span over a year", func(b map[string]any) { b["endDate"] = "2027-06-01"; delete(b, "totalAmount") }, http.StatusBadRequest},
		{"unknown stand", func(b map[string]any) { b["standId"] = "S-SP-99" }, http.StatusNotFound},
		{"stand under maintenance", func(b map[string]any) { b["standId"] = "M-RO-3"; b["totalAmount"] = 210 }, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := reservationBody("S-SP-1")
			tt.modify(body)

			rec := do(t, s, http.MethodPost, "/api/reservations", body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			assert.Contains(t, decode[map[string]any](t, rec), "error")
		})
	}

	rec := do(t, s, http.MethodGet, "/api/stands/S-SP-1", nil)
	assert.Equal(t, domain.StandAvailable, decode[domain.Stand](t, rec).Status)
}

func TestCreateReservation_DaysOverride(t *testing.T) {
	s, _ := newTestServer(t)

	body := reservationBody("T-GA-2")
	body["days"] = 2
	body["totalAmount"] = 0

	rec := do(t, s, http.MethodPost, "/api/reservations", body)
	require.Equal(t, http.StatusOK, rec.Code)

	id := decode[map[string]any](t, rec)["id"].(string)
	rec = do(t, s, http.MethodGet, "/api/reservations/"+id, nil)
	assert.Equal(t, 200, decode[domain.Reservation](t, rec).TotalAmount)
}

func TestMarkPaid(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/reservations", reservationBody("S-SP-1"))
	require.Equal(t, http.StatusOK, rec.Code)
	id := decode[map[string]any](t, rec)["id"].(string)

	for i := 0; i < 2; i++ {
		rec = do(t, s, http.MethodPut, "/api/reservations/"+id+"/pay", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	}

	rec = do(t, s, http.MethodGet, "/api/reservations/"+id, nil)
	assert.Equal(t, domain.PaymentPaid, decode[domain.Reservation](t, rec).PaymentStatus)
}

func TestMarkPaid_UnknownReservation(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPut, "/api/reservations/R-missing/pay", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"reservation with id=R-missing not found"}`, rec.Body.String())
}

func TestUpdateCleaning(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/reservations", reservationBody("S-SP-1"))
	require.Equal(t, http.StatusOK, rec.Code)
	id := decode[map[string]any](t, rec)["id"].(string)

	rec = do(t, s, http.MethodPut, "/api/reservations/"+id+"/cleaning", map[string]any{"status": "REJECTED", "note": "Odpady"})
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[domain.Reservation](t, rec)
	assert.Equal(t, domain.CleaningRejected, res.CleaningStatus)
	assert.Equal(t, "Odpady", res.CleaningNote)

	rec = do(t, s, http.MethodPut, "/api/reservations/"+id+"/cleaning", map[string]any{"status": "APPROVED", "note": "ok"})
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[domain.Reservation](t, rec)
	assert.Equal(t, domain.CleaningApproved, res.CleaningStatus)
	assert.Empty(t, res.CleaningNote)

	rec = do(t, s, http.MethodPut, "/api/reservations/"+id+"/cleaning", map[string]any{"status": "PENDING"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPut, "/api/reservations/R-missing/cleaning", map[string]any{"status": "APPROVED"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetReservations_Filters(t *testing.T) {
	s, _ := newTestServer(t)

	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/api/reservations", reservationBody("S-SP-1")).Code)

	later := reservationBody("T-GA-2")
	later["startDate"], later["endDate"], later["totalAmount"] = "2026-06-01", "2026-06-02", 200
	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/api/reservations", later).Code)

	rec := do(t, s, http.MethodGet, "/api/reservations", nil)
	assert.Len(t, decode[[]domain.Reservation](t, rec), 2)

	rec = do(t, s, http.MethodGet, "/api/reservations?date=2026-05-07", nil)
	today := decode[[]domain.Reservation](t, rec)
	require.Len(t, today, 1)
	assert.Equal(t, "S-SP-1", today[0].StandID)

	rec = do(t, s, http.MethodGet, "/api/reservations?date=tomorrow", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStandStatus(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPut, "/api/stands/M-RO-3/status", map[string]any{"status": "AVAILABLE"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StandAvailable, decode[domain.Stand](t, rec).Status)

	rec = do(t, s, http.MethodPut, "/api/stands/S-SP-1/status", map[string]any{"status": "RESERVED"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, s, http.MethodPut, "/api/stands/S-SP-1/status", map[string]any{"status": "CLOSED"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPut, "/api/stands/S-SP-9/status", map[string]any{"status": "MAINTENANCE"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateStand(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/stands", map[string]any{"categoryCode": "RZ", "x": 790, "y": 20})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	stand := decode[domain.Stand](t, rec)
	assert.Equal(t, "S-RZ-4", stand.ID)
	assert.Equal(t, 4, stand.Number)
	assert.Equal(t, 50, stand.PriceDay)
	assert.Equal(t, domain.Location{X: 790, Y: 20}, stand.Location)

	rec = do(t, s, http.MethodPost, "/api/stands", map[string]any{"categoryCode": "ZZ"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIncidents(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/incidents", map[string]any{
		"standId":     "S-SP-1",
		"reporterId":  "C-1",
		"type":        "DAMAGE",
		"description": "Złamany daszek",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	inc := decode[domain.Incident](t, rec)
	assert.True(t, strings.HasPrefix(inc.ID, "INC-"))
	assert.Equal(t, domain.IncidentOpen, inc.Status)

	rec = do(t, s, http.MethodPost, "/api/incidents", map[string]any{"reporterId": "C-1", "type": "OTHER"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, decode[domain.Incident](t, rec).StandID)

	rec = do(t, s, http.MethodPost, "/api/incidents", map[string]any{"standId": "S-SP-99", "reporterId": "C-1", "type": "OTHER"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/incidents", nil)
	assert.Len(t, decode[[]domain.Incident](t, rec), 2)

	rec = do(t, s, http.MethodPut, "/api/incidents/"+inc.ID+"/status", map[string]any{"status": "RESOLVED"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.IncidentResolved, decode[domain.Incident](t, rec).Status)

	rec = do(t, s, http.MethodPut, "/api/incidents/"+inc.ID+"/status", map[string]any{"status": "OPEN"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, s, http.MethodPut, "/api/incidents/INC-missing/status", map[string]any{"status": "OPEN"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportSummary(t *testing.T) {
	s, _ := newTestServer(t)

	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/api/reservations", reservationBody("S-SP-1")).Code)

	rec := do(t, s, http.MethodGet, "/api/reports/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	sum := decode[domain.Summary](t, rec)
	assert.Equal(t, 3, sum.StandCount)
	assert.Equal(t, 1, sum.ReservationCount)
	assert.Equal(t, 420, sum.PendingIncome)
	assert.Equal(t, 33, sum.OccupancyRate)
}

func TestSeededMarket(t *testing.T) {
	gdb := openTestDB(t)
	seeder := service.NewSeeder(repository.NewStandRepository(dao.NewStandDAO(gdb)), 2024)

	n, err := seeder.SeedIfEmpty(context.Background())
	require.NoError(t, err)
	require.Equal(t, 38, n)

	s := NewServer(testConfig(), gdb, events.NopPublisher{}, nil)

	stands := decode[[]domain.Stand](t, do(t, s, http.MethodGet, "/api/stands", nil))
	require.Len(t, stands, 38)

	prices := map[string]int{}
	for i, st := range stands {
		assert.Equal(t, i+1, st.Number)
		prices[st.ID] = st.PriceDay
	}

	for _, r := range decode[[]domain.Reservation](t, do(t, s, http.MethodGet, "/api/reservations", nil)) {
		assert.Equal(t, prices[r.StandID]*7, r.TotalAmount)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	do(t, s, http.MethodGet, "/api/stands", nil)

	rec := do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `market_http_requests_total{code="200",method="GET",route="/api/stands"} 1`)
}
