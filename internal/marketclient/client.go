package marketclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marketstall/market-api/internal/api/handler/v1/request"
	"github.com/marketstall/market-api/internal/api/handler/v1/response"
	"github.com/marketstall/market-api/internal/domain"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer of the market API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("market api: %d %s", e.StatusCode, e.Message)
}

// HasStatus reports whether err is an APIError with the given HTTP status.
func HasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// Client calls the market API, one method per endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) ListStands(ctx context.Context) ([]domain.Stand, error) {
	var stands []domain.Stand
	if err := c.do(ctx, http.MethodGet, "/api/stands", nil, nil, &stands); err != nil {
		return nil, err
	}

	return stands, nil
}

func (c *Client) GetStand(ctx context.Context, id string) (domain.Stand, error) {
	var stand domain.Stand
	if err := c.do(ctx, http.MethodGet, "/api/stands/"+url.PathEscape(id), nil, nil, &stand); err != nil {
		return domain.Stand{}, err
	}

	return stand, nil
}

func (c *Client) CreateStand(ctx context.Context, categoryCode string, loc domain.Location) (domain.Stand, error) {
	body := request.CreateStandRequest{CategoryCode: categoryCode, X: loc.X, Y: loc.Y}

	var stand domain.Stand
	if err := c.do(ctx, http.MethodPost, "/api/stands", nil, body, &stand); err != nil {
		return domain.Stand{}, err
	}

	return stand, nil
}

func (c *Client) UpdateStandStatus(ctx context.Context, id string, status domain.StandStatus) (domain.Stand, error) {
	body := request.UpdateStandStatusRequest{Status: string(status)}

	var stand domain.Stand
	if err := c.do(ctx, http.MethodPut, "/api/stands/"+url.PathEscape(id)+"/status", nil, body, &stand); err != nil {
		return domain.Stand{}, err
	}

	return stand, nil
}

func (c *Client) ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	query := url.Values{}
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}
	if filter.StandID != "" {
		query.Set("standId", filter.StandID)
	}

	var reservations []domain.Reservation
	if err := c.do(ctx, http.MethodGet, "/api/reservations", query, nil, &reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

func (c *Client) GetReservation(ctx context.Context, id string) (domain.Reservation, error) {
	var reservation domain.Reservation
	if err := c.do(ctx, http.MethodGet, "/api/reservations/"+url.PathEscape(id), nil, nil, &reservation); err != nil {
		return domain.Reservation{}, err
	}

	return reservation, nil
}

// CreateReservation returns the id of the new reservation.
func (c *Client) CreateReservation(ctx context.Context, in domain.NewReservation) (string, error) {
	body := request.CreateReservationRequest{
		StandID:     in.StandID,
		UserID:      in.UserID,
		UserName:    in.UserName,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Days:        in.Days,
		TotalAmount: in.TotalAmount,
	}

	var created response.Success
	if err := c.do(ctx, http.MethodPost, "/api/reservations", nil, body, &created); err != nil {
		return "", err
	}

	return created.ID, nil
}

func (c *Client) MarkPaid(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/reservations/"+url.PathEscape(id)+"/pay", nil, nil, nil)
}

func (c *Client) UpdateCleaning(ctx context.Context, id string, status domain.CleaningStatus, note string) (domain.Reservation, error) {
	body := request.UpdateCleaningRequest{Status: string(status), Note: note}

	var reservation domain.Reservation
	if err := c.do(ctx, http.MethodPut, "/api/reservations/"+url.PathEscape(id)+"/cleaning", nil, body, &reservation); err != nil {
		return domain.Reservation{}, err
	}

	return reservation, nil
}

func (c *Client) ListIncidents(ctx context.Context) ([]domain.Incident, error) {
	var incidents []domain.Incident
	if err := c.do(ctx, http.MethodGet, "/api/incidents", nil, nil, &incidents); err != nil {
		return nil, err
	}

	return incidents, nil
}

func (c *Client) ReportIncident(ctx context.Context, in domain.NewIncident) (domain.Incident, error) {
	body := request.CreateIncidentRequest{
		StandID:     in.StandID,
		ReporterID:  in.ReporterID,
		Type:        string(in.Type),
		Description: in.Description,
	}

	var incident domain.Incident
	if err := c.do(ctx, http.MethodPost, "/api/incidents", nil, body, &incident); err != nil {
		return domain.Incident{}, err
	}

	return incident, nil
}

func (c *Client) UpdateIncidentStatus(ctx context.Context, id string, status domain.IncidentStatus) (domain.Incident, error) {
	body := request.UpdateIncidentStatusRequest{Status: string(status)}

	var incident domain.Incident
	if err := c.do(ctx, http.MethodPut, "/api/incidents/"+url.PathEscape(id)+"/status", nil, body, &incident); err != nil {
		return domain.Incident{}, err
	}

	return incident, nil
}

func (c *Client) Summary(ctx context.Context) (domain.Summary, error) {
	var summary domain.Summary
	if err := c.do(ctx, http.MethodGet, "/api/reports/summary", nil, nil, &summary); err != nil {
		return domain.Summary{}, err
	}

	return summary, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("json.Marshal -> %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("c.httpClient.Do %s %s -> %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr response.Err
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response -> %w", method, path, err)
	}

	return nil
}
