package config

// NBAConfig controls how we talk to the NBA CDN endpoints. Empty values
// fall through to the client's built-in production URLs.
type NBAConfig struct {
	BaseURL     string
	ScheduleURL string
}

func loadNBA() NBAConfig {
	return NBAConfig{
		BaseURL:     envOrDefault(envNbaBaseURL, ""),
		ScheduleURL: envOrDefault(envNbaSchedule, ""),
	}
}
