package settings

import (
	"time"

	"github.com/rs/zerolog"

	"quitlog/internal/store"
)

const startDateKey = "habitTrackerStartDate"

// Settings persists the tracking start date, which bounds how far back the
// logbook reaches.
type Settings struct {
	st  *store.Store
	log zerolog.Logger
}

func New(st *store.Store, log zerolog.Logger) *Settings {
	return &Settings{st: st, log: log}
}

// StartDate returns the persisted start date, defaulting to now when no value
// has been saved yet. Unreadable or malformed values read as now.
func (s *Settings) StartDate(now time.Time) time.Time {
	raw, ok, err := s.st.Get(startDateKey)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to read start date")
		return now
	}
	if !ok {
		return now
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		s.log.Error().Err(err).Str("value", raw).Msg("malformed start date, defaulting to today")
		return now
	}
	return t
}

// SetStartDate overwrites the start date. Last write wins; no history is kept.
func (s *Settings) SetStartDate(t time.Time) error {
	return s.st.Set(startDateKey, t.Format(time.RFC3339))
}
