package tracker

import (
	"time"

	"github.com/chronos-cli/chronos/internal/model"
	"github.com/chronos-cli/chronos/internal/storage"
	"github.com/chronos-cli/chronos/internal/timecalc"
)

// Session binds today's record to the loaded data set for the duration
// of one command invocation. All stamping goes through a Session so the
// cached worked total and the data file stay consistent.
type Session struct {
	Base   string
	Data   storage.Data
	Today  string
	Record *model.DayRecord
}

// NewSession loads the data file from base and resolves the record for
// the day containing now, creating it from def on first access.
func NewSession(base string, now time.Time, def model.DayRecord) (*Session, error) {
	data, err := storage.Load(base)
	if err != nil {
		return nil, err
	}
	key := timecalc.DateKey(now)
	return &Session{
		Base:   base,
		Data:   data,
		Today:  key,
		Record: data.GetOrCreate(key, def),
	}, nil
}

// RecordStamp appends a clock-in/clock-out stamp for now, refreshes the
// cached worked total and persists the data file. A stamp closer than
// DebounceInterval to the previous one is dropped and nothing is
// written; the return value reports whether the stamp was recorded.
func (s *Session) RecordStamp(now time.Time) (bool, error) {
	stamps := s.Record.Stamps
	if len(stamps) > 0 && now.Sub(stamps[len(stamps)-1]) < DebounceInterval {
		return false, nil
	}
	s.Record.Stamps = append(stamps, now)
	s.Record.WorkedSeconds = WorkedSeconds(s.Record, now)
	return true, s.Save()
}

// Save writes the data file.
func (s *Session) Save() error {
	return storage.Save(s.Base, s.Data)
}
