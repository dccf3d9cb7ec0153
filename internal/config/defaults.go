// Package config provides configuration loading and defaults for dayline.
package config

// DefaultDataDir is the default location for dayline data and configuration.
const DefaultDataDir = "~/.config/dayline"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "dayline.db"

// DefaultTarget is the default habit target frequency in days per week.
const DefaultTarget = 3

// DefaultInsights holds the default insight rule thresholds.
var DefaultInsights = Insights{
	HighCompletionRate: 80,
	LowCompletionRate:  50,
	StreakConfidence:   7,
	WeatherDominance:   0.7,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
