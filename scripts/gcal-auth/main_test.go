package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "google_calendar:\n  credentials_path: creds/desktop.json\n  holiday_calendar_id: en.indian#holiday@group.v.calendar.google.com\n"
	if err := os.WriteFile(path, []byte(yaml), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		configPath  string
		credentials string
		calendarID  string
		want        settings
	}{
		{
			name:       "from config",
			configPath: path,
			want:       settings{credentialsPath: "creds/desktop.json", calendarID: "en.indian#holiday@group.v.calendar.google.com", timezone: "Asia/Kolkata"},
		},
		{
			name:        "flags override",
			configPath:  path,
			credentials: "other.json",
			calendarID:  "school-holidays",
			want:        settings{credentialsPath: "other.json", calendarID: "school-holidays", timezone: "Asia/Kolkata"},
		},
		{
			name:       "missing config",
			configPath: filepath.Join(t.TempDir(), "absent.yaml"),
			want:       settings{credentialsPath: "google-credentials.json", timezone: "Asia/Kolkata"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loadSettings(tt.configPath, tt.credentials, tt.calendarID); got != tt.want {
				t.Errorf("loadSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
