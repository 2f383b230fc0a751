package domain

import (
	"fmt"
	"time"
)

type IncidentType string

const (
	IncidentDamage       IncidentType = "DAMAGE"
	IncidentCleanliness  IncidentType = "CLEANLINESS"
	IncidentUnauthorized IncidentType = "UNAUTHORIZED"
	IncidentOther        IncidentType = "OTHER"
)

type IncidentStatus string

const (
	IncidentOpen       IncidentStatus = "OPEN"
	IncidentInProgress IncidentStatus = "IN_PROGRESS"
	IncidentResolved   IncidentStatus = "RESOLVED"
)

var incidentRank = map[IncidentStatus]int{
	IncidentOpen:       0,
	IncidentInProgress: 1,
	IncidentResolved:   2,
}

// Incident is a field report. StandID is empty when the report is not tied to
// a stand.
type Incident struct {
	ID          string         `json:"id"`
	StandID     string         `json:"standId,omitempty"`
	ReporterID  string         `json:"reporterId"`
	Type        IncidentType   `json:"type"`
	Description string         `json:"description"`
	Status      IncidentStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type NewIncident struct {
	StandID     string
	ReporterID  string
	Type        IncidentType
	Description string
}

// TransitionTo moves the incident forward: OPEN -> IN_PROGRESS -> RESOLVED,
// skipping IN_PROGRESS is allowed, going back is not.
func (i *Incident) TransitionTo(next IncidentStatus) error {
	to, ok := incidentRank[next]
	if !ok {
		return fmt.Errorf("%w: unknown incident status %q", ErrInvalidStatusTransition, next)
	}
	if to < incidentRank[i.Status] {
		return fmt.Errorf("%w: incident %s %s -> %s", ErrInvalidStatusTransition, i.ID, i.Status, next)
	}
	i.Status = next

	return nil
}
