package ledger

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"quitlog/internal/store"
)

const usageDataKey = "habitTrackerUsageData"

// Ledger holds the per-day usage counts, persisted as a single JSON object
// keyed by day key. One instance is shared by every screen; the mutex
// serializes read-modify-write cycles so rapid back-to-back taps can't lose
// an update.
type Ledger struct {
	mu  sync.Mutex
	st  *store.Store
	log zerolog.Logger
}

func New(st *store.Store, log zerolog.Logger) *Ledger {
	return &Ledger{st: st, log: log}
}

// ReadDay returns the count for dayKey, 0 when absent.
func (l *Ledger) ReadDay(dayKey string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()[dayKey]
}

// ReadAll returns the full materialized ledger.
func (l *Ledger) ReadAll() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// Increment adds one usage to dayKey and persists the ledger. The returned
// count reflects the increment even if the write failed; the caller decides
// whether the error matters.
func (l *Ledger) Increment(dayKey string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	counts := l.load()
	counts[dayKey]++
	count := counts[dayKey]

	if err := l.save(counts); err != nil {
		l.log.Error().Err(err).Str("day", dayKey).Msg("failed to save usage data")
		return count, err
	}
	return count, nil
}

// Decrement removes one usage from dayKey, flooring at zero. Decrementing an
// absent or zero day is a no-op.
func (l *Ledger) Decrement(dayKey string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	counts := l.load()
	count := counts[dayKey]
	if count == 0 {
		return 0, nil
	}

	count--
	if count == 0 {
		// Zero counts read the same as absent, so keep the blob sparse.
		delete(counts, dayKey)
	} else {
		counts[dayKey] = count
	}

	if err := l.save(counts); err != nil {
		l.log.Error().Err(err).Str("day", dayKey).Msg("failed to save usage data")
		return count, err
	}
	return count, nil
}

// load reads the persisted blob. Any failure, including malformed JSON, reads
// as an empty ledger rather than surfacing to the caller.
func (l *Ledger) load() map[string]int {
	raw, ok, err := l.st.Get(usageDataKey)
	if err != nil {
		l.log.Error().Err(err).Msg("failed to read usage data")
		return map[string]int{}
	}
	if !ok {
		return map[string]int{}
	}

	var counts map[string]int
	if err := json.Unmarshal([]byte(raw), &counts); err != nil {
		l.log.Error().Err(err).Msg("malformed usage data, starting empty")
		return map[string]int{}
	}
	if counts == nil {
		counts = map[string]int{}
	}
	for key, count := range counts {
		if count < 0 {
			counts[key] = 0
		}
	}
	return counts
}

func (l *Ledger) save(counts map[string]int) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return l.st.Set(usageDataKey, string(raw))
}
