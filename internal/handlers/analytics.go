package handlers

import "securiwisetraining.co.uk/web/internal/config"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	Debug            bool
}

// AnalyticsFrom builds Analytics from the server config. Dev builds always run GA in debug mode.
func AnalyticsFrom(cfg *config.Config) Analytics {
	return Analytics{
		GA4MeasurementID: cfg.GA4MeasurementID,
		Debug:            !cfg.IsProd(),
	}
}
