package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateReservationRequest_Validate(t *testing.T) {
	valid := CreateReservationRequest{
		StandID:   "S-SP-1",
		UserID:    "U-1",
		UserName:  "Jan Kowalski",
		StartDate: "2026-05-01",
		EndDate:   "2026-05-07",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(r *CreateReservationRequest)
		field  string
	}{
		{"missing stand", func(r *CreateReservationRequest) { r.StandID = "" }, "standId"},
		{"missing user name", func(r *CreateReservationRequest) { r.UserName = "" }, "userName"},
		{"bad start date", func(r *CreateReservationRequest) { r.StartDate = "01/05/2026" }, "startDate"},
		{"missing end date", func(r *CreateReservationRequest) { r.EndDate = "" }, "endDate"},
		{"negative days", func(r *CreateReservationRequest) { r.Days = -1 }, "days"},
		{"days over a year", func(r *CreateReservationRequest) { r.Days = 153722867280912931 }, "days"},
		{"negative amount", func(r *CreateReservationRequest) { r.TotalAmount = -5 }, "totalAmount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.modify(&req)

			err := req.Validate()
			assert.ErrorContains(t, err, tt.field)
		})
	}
}

func TestCreateReservationRequest_IgnoresStatuses(t *testing.T) {
	req := CreateReservationRequest{
		StandID:        "S-SP-1",
		UserID:         "U-1",
		UserName:       "Jan",
		StartDate:      "2026-05-01",
		EndDate:        "2026-05-01",
		PaymentStatus:  "PAID",
		CleaningStatus: "APPROVED",
	}

	assert.NoError(t, req.Validate())
	assert.Equal(t, "S-SP-1", req.ToDomain().StandID)
}

func TestListReservationsQuery_Validate(t *testing.T) {
	assert.NoError(t, (&ListReservationsQuery{}).Validate())
	assert.NoError(t, (&ListReservationsQuery{Date: "2026-05-01"}).Validate())
	assert.Error(t, (&ListReservationsQuery{Date: "today"}).Validate())
}

func TestUpdateCleaningRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateCleaningRequest{Status: "APPROVED"}).Validate())
	assert.NoError(t, (&UpdateCleaningRequest{Status: "REJECTED", Note: "brudno"}).Validate())
	assert.Error(t, (&UpdateCleaningRequest{Status: "PENDING"}).Validate())
	assert.Error(t, (&UpdateCleaningRequest{}).Validate())
}

func TestCreateStandRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CreateStandRequest{CategoryCode: "GA", X: 790, Y: 20}).Validate())
	assert.Error(t, (&CreateStandRequest{CategoryCode: "XX"}).Validate())
	assert.Error(t, (&CreateStandRequest{CategoryCode: "SP", X: -1}).Validate())
}

func TestStatusRequests_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateStandStatusRequest{Status: "MAINTENANCE"}).Validate())
	assert.Error(t, (&UpdateStandStatusRequest{Status: "BROKEN"}).Validate())

	assert.NoError(t, (&UpdateIncidentStatusRequest{Status: "RESOLVED"}).Validate())
	assert.Error(t, (&UpdateIncidentStatusRequest{}).Validate())
}

func TestCreateIncidentRequest_Validate(t *testing.T) {
	req := CreateIncidentRequest{ReporterID: "C-1", Type: "CLEANLINESS", Description: "Śmieci"}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "CLEANLINESS", string(req.ToDomain().Type))

	req.Type = "FIRE"
	assert.ErrorContains(t, req.Validate(), "type")
}
