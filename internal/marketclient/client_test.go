package marketclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketstall/market-api/internal/api"
	"github.com/marketstall/market-api/internal/config"
	"github.com/marketstall/market-api/internal/db"
	"github.com/marketstall/market-api/internal/domain"
	"github.com/marketstall/market-api/internal/events"
	"github.com/marketstall/market-api/internal/metrics"
	"github.com/marketstall/market-api/internal/repository/dao"
)

// newMarket serves a fresh market holding S-SP-1 and T-GA-2, both available.
func newMarket(t *testing.T) *Client {
	t.Helper()

	gdb, err := db.OpenSQLite(filepath.Join(t.TempDir(), "market.db"))
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(gdb))

	standDAO := dao.NewStandDAO(gdb)
	for i, offer := range []domain.CategoryOffer{domain.Offers[0], domain.Offers[2]} {
		s := domain.NewStand(offer, i+1, domain.Location{X: 20 + 110*i, Y: 20})
		_, err := standDAO.Insert(context.Background(), dao.Stand{
			ID:       s.ID,
			Type:     string(s.Type),
			Category: string(s.Category),
			Number:   s.Number,
			PriceDay: s.PriceDay,
			Status:   string(s.Status),
			X:        s.Location.X,
			Y:        s.Location.Y,
		})
		require.NoError(t, err)
	}

	conf := &config.AppConfig{
		API: &config.APIConfig{Environment: "test", Port: "0", BaseURL: "localhost"},
		Gin: &config.GinConfig{Mode: "test"},
	}
	srv := httptest.NewServer(api.NewServer(conf, gdb, events.NopPublisher{}, metrics.New()).Router)

	t.Cleanup(func() {
		srv.Close()
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return NewClient(srv.URL+"/", WithHTTPClient(srv.Client()))
}

func weekAt(standID string) domain.NewReservation {
	return domain.NewReservation{
		StandID:     standID,
		UserID:      "U-1",
		UserName:    "Jan Kowalski",
		StartDate:   "2026-05-01",
		EndDate:     "2026-05-07",
		TotalAmount: 420,
	}
}

func TestClient_Stands(t *testing.T) {
	c := newMarket(t)
	ctx := context.Background()

	stands, err := c.ListStands(ctx)
	require.NoError(t, err)
	require.Len(t, stands, 2)
	assert.Equal(t, domain.Location{X: 20, Y: 20}, stands[0].Location)

	created, err := c.CreateStand(ctx, "RZ", domain.Location{X: 240, Y: 20})
	require.NoError(t, err)
	assert.Equal(t, "S-RZ-3", created.ID)
	assert.Equal(t, domain.StandAvailable, created.Status)

	updated, err := c.UpdateStandStatus(ctx, created.ID, domain.StandMaintenance)
	require.NoError(t, err)
	assert.Equal(t, domain.StandMaintenance, updated.Status)

	_, err = c.GetStand(ctx, "S-XX-99")
	assert.True(t, HasStatus(err, http.StatusNotFound))
}

func TestClient_ReservationLifecycle(t *testing.T) {
	c := newMarket(t)
	ctx := context.Background()

	id, err := c.CreateReservation(ctx, weekAt("S-SP-1"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = c.CreateReservation(ctx, weekAt("S-SP-1"))
	assert.True(t, HasStatus(err, http.StatusConflict))

	stand, err := c.GetStand(ctx, "S-SP-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StandReserved, stand.Status)

	require.NoError(t, c.MarkPaid(ctx, id))
	require.NoError(t, c.MarkPaid(ctx, id))

	res, err := c.UpdateCleaning(ctx, id, domain.CleaningRejected, "trash left behind")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, res.PaymentStatus)
	assert.Equal(t, domain.CleaningRejected, res.CleaningStatus)
	assert.Equal(t, "trash left behind", res.CleaningNote)

	onDay, err := c.ListReservations(ctx, domain.ReservationFilter{Date: "2026-05-03"})
	require.NoError(t, err)
	assert.Len(t, onDay, 1)

	otherStand, err := c.ListReservations(ctx, domain.ReservationFilter{StandID: "T-GA-2"})
	require.NoError(t, err)
	assert.Empty(t, otherStand)

	summary, err := c.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.StandCount)
}

func TestClient_BadRequestCarriesMessage(t *testing.T) {
	c := newMarket(t)

	in := weekAt("S-SP-1")
	in.TotalAmount = 1

	_, err := c.CreateReservation(context.Background(), in)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}

func TestClient_Incidents(t *testing.T) {
	c := newMarket(t)
	ctx := context.Background()

	inc, err := c.ReportIncident(ctx, domain.NewIncident{
		StandID:     "T-GA-2",
		ReporterID:  "U-7",
		Type:        domain.IncidentDamage,
		Description: "broken awning",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IncidentOpen, inc.Status)

	resolved, err := c.UpdateIncidentStatus(ctx, inc.ID, domain.IncidentResolved)
	require.NoError(t, err)
	assert.Equal(t, domain.IncidentResolved, resolved.Status)

	_, err = c.UpdateIncidentStatus(ctx, inc.ID, domain.IncidentOpen)
	assert.True(t, HasStatus(err, http.StatusConflict))

	all, err := c.ListIncidents(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "T-GA-2", all[0].StandID)
}

func TestHasStatus(t *testing.T) {
	assert.False(t, HasStatus(nil, http.StatusNotFound))
	assert.False(t, HasStatus(assert.AnError, http.StatusNotFound))
	assert.True(t, HasStatus(&APIError{StatusCode: http.StatusNotFound}, http.StatusNotFound))
}
