package model

// LogSummary holds display-ready values derived from one log batch.
type LogSummary struct {
	LoggerState  string
	Logging      bool
	ReachedCount string
	AimedCount   string
	ActionCount  string
	Hourly       float64
	Points       int
}
