// scripts/gcal-auth/main.go
//
// Grants read-only access to the school holiday calendar for an OAuth
// Desktop App credentials file, saves the token where pkg/gcalendar reads it,
// then lists this year's holidays to check the configured calendar ID.
//
// The credentials path and calendar ID come from the google_calendar section
// of the config file; flags override them.
//
// Usage:
//   go run ./scripts/gcal-auth [-config config.yaml] [-credentials file.json] [-calendar id]

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"school-assistant/pkg/gcalendar"
)

type settings struct {
	credentialsPath string
	calendarID      string
	timezone        string
}

func loadSettings(configPath, credentials, calendarID string) settings {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetDefault("google_calendar.credentials_path", "google-credentials.json")
	v.SetDefault("assistant.timezone", "Asia/Kolkata")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("Config %q not read (%v), using flags and defaults", configPath, err)
	}

	s := settings{
		credentialsPath: v.GetString("google_calendar.credentials_path"),
		calendarID:      v.GetString("google_calendar.holiday_calendar_id"),
		timezone:        v.GetString("assistant.timezone"),
	}
	if credentials != "" {
		s.credentialsPath = credentials
	}
	if calendarID != "" {
		s.calendarID = calendarID
	}
	return s
}

func main() {
	configPath := flag.String("config", "config.yaml", "config file with a google_calendar section")
	credentials := flag.String("credentials", "", "OAuth Desktop App credentials file")
	calendarID := flag.String("calendar", "", "holiday calendar ID to check")
	flag.Parse()

	s := loadSettings(*configPath, *credentials, *calendarID)

	data, err := os.ReadFile(s.credentialsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", s.credentialsPath, err)
	}

	oauthConfig, err := google.ConfigFromJSON(data, calendar.CalendarReadonlyScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, s.credentialsPath)
	}

	fmt.Println("STEP 1: open this URL and sign in with an account that can read the holiday calendar:")
	fmt.Println()
	fmt.Println(oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("STEP 2: paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}
	if err := saveToken(tok); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nToken saved to %s.\n", gcalendar.DefaultTokenPath)

	if s.calendarID == "" {
		fmt.Println("No holiday calendar ID configured; set google_calendar.holiday_calendar_id before starting the API.")
		return
	}
	n, err := countHolidays(ctx, data, s)
	if err != nil {
		log.Fatalf("Token saved, but listing holidays from %q failed: %v", s.calendarID, err)
	}
	fmt.Printf("Calendar %q has %d entries this year. Restart the API to load them.\n", s.calendarID, n)
}

func saveToken(tok *oauth2.Token) error {
	f, err := os.OpenFile(gcalendar.DefaultTokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", gcalendar.DefaultTokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", gcalendar.DefaultTokenPath, err)
	}
	return nil
}

func countHolidays(ctx context.Context, credentials []byte, s settings) (int, error) {
	loc, err := time.LoadLocation(s.timezone)
	if err != nil {
		return 0, err
	}
	client, err := gcalendar.NewClientFromCredentialsJSON(ctx, credentials)
	if err != nil {
		return 0, err
	}

	start := time.Date(time.Now().In(loc).Year(), time.January, 1, 0, 0, 0, 0, loc)
	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: s.calendarID,
		TimeMin:    start,
		TimeMax:    start.AddDate(1, 0, 0).Add(-time.Second),
		MaxResults: 250,
		Location:   loc,
	})
	if err != nil {
		return 0, err
	}
	return len(events), nil
}
