// Package config provides configuration loading and defaults for fingerfit.
package config

// DefaultLogPath is the default location of the exercise history log.
const DefaultLogPath = "~/.local/share/fingerfit/history.log"

// DefaultConfigDir is the default location for fingerfit configuration.
const DefaultConfigDir = "~/.config/fingerfit"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "fingerfit.db"

// DefaultSession holds the standard exercise parameters: a 5-second
// hold per pose after a 2-second warmup, gated by 5 consecutive
// matching frames, 10 rounds to a set.
var DefaultSession = Session{
	HoldSeconds:      5,
	CountdownSeconds: 2,
	Stability:        5,
	RoundsPerSet:     10,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
