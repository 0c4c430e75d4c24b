package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// DefaultTokenPath is where an installed-app OAuth token is read from.
const DefaultTokenPath = "token.json"

const allDayLayout = "2006-01-02"

// Client wraps the Google Calendar API service with read-only access.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON accepts Service Account JSON, or installed-app
// OAuth credentials together with a token at DefaultTokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarReadonlyScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile(DefaultTokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no %s found: use Service Account instead", DefaultTokenPath)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", DefaultTokenPath, jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}
	return &Client{service: svc}, nil
}

// NewClientFromAPIKey creates a client for public calendars such as a
// regional holiday calendar.
func NewClientFromAPIKey(ctx context.Context, apiKey string) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListEvents returns single (expanded) events overlapping [TimeMin, TimeMax]
// ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}

	call := c.service.Events.List(calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		ev, ok := convertEvent(item, loc)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func convertEvent(item *calendar.Event, loc *time.Location) (Event, bool) {
	if item == nil || item.Start == nil || item.Status == "cancelled" {
		return Event{}, false
	}
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		HtmlLink:    item.HtmlLink,
	}

	if item.Start.DateTime != "" {
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return Event{}, false
		}
		ev.StartTime = start
		ev.EndTime = start
		if item.End != nil && item.End.DateTime != "" {
			if end, err := time.Parse(time.RFC3339, item.End.DateTime); err == nil {
				ev.EndTime = end
			}
		}
		return ev, true
	}

	start, err := time.ParseInLocation(allDayLayout, item.Start.Date, loc)
	if err != nil {
		return Event{}, false
	}
	ev.AllDay = true
	ev.StartTime = start
	// all-day end dates are exclusive
	ev.EndTime = start.AddDate(0, 0, 1).Add(-time.Second)
	if item.End != nil && item.End.Date != "" {
		if end, err := time.ParseInLocation(allDayLayout, item.End.Date, loc); err == nil && end.After(start) {
			ev.EndTime = end.Add(-time.Second)
		}
	}
	return ev, true
}
