package main

import (
	"context"

	"school-assistant/config"
	"school-assistant/internal/assistant"
	"school-assistant/internal/model"
	"school-assistant/pkg/gcalendar"
	"school-assistant/pkg/log"
)

// newCalendarClient prefers OAuth credentials and falls back to an API key.
// It returns nil when neither is configured or both fail.
func newCalendarClient(ctx context.Context, cfg config.GoogleCalendarConfig, logger log.Logger) *gcalendar.Client {
	if cfg.HolidayCalendarID == "" {
		logger.Warn(ctx, "Holiday calendar skipped: google_calendar.holiday_calendar_id is empty")
		return nil
	}
	if cfg.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath)
		if err == nil {
			logger.Info(ctx, "✅ Google Calendar initialized from credentials")
			return client
		}
		logger.Warnf(ctx, "Google Calendar credentials not usable: %v", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
	}
	if cfg.APIKey != "" {
		client, err := gcalendar.NewClientFromAPIKey(ctx, cfg.APIKey)
		if err == nil {
			logger.Info(ctx, "✅ Google Calendar initialized from API key")
			return client
		}
		logger.Warnf(ctx, "Google Calendar API key not usable: %v", err)
	}
	return nil
}

func faqAnswers(entries map[string]config.FAQEntry) map[model.FAQTopic]assistant.FAQAnswer {
	out := make(map[model.FAQTopic]assistant.FAQAnswer, len(entries))
	for topic, e := range entries {
		out[model.FAQTopic(topic)] = assistant.FAQAnswer{
			Text:    e.Text,
			AuxKind: model.AuxKind(e.AuxKind),
			AuxURL:  e.AuxURL,
		}
	}
	return out
}
