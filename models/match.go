package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// CricketMatch is a scheduled match both user and admin flows read.
type CricketMatch struct {
	ID           int64     `json:"id"`
	MatchName    string    `json:"match_name" validate:"notblank,max=100"`
	Team1        string    `json:"team_1" validate:"notblank,max=255"`
	Team2        string    `json:"team_2" validate:"notblank,max=255"`
	MatchDate    Timestamp `json:"match_date" validate:"required"`
	Venue        string    `json:"venue" validate:"notblank,max=255"`
	Team1Players Roster    `json:"team_1_players" validate:"min=1,dive,notblank"`
	Team2Players Roster    `json:"team_2_players" validate:"min=1,dive,notblank"`
}

func (m *CricketMatch) Validate() error {
	return validateStruct(m)
}

// Fixture is the "<team_1> vs <team_2>" label shown to bettors.
func (m *CricketMatch) Fixture() string {
	return m.Team1 + " vs " + m.Team2
}

// Roster is an ordered list of player names stored as a JSON array.
type Roster []string

func (r Roster) Value() (driver.Value, error) {
	if r == nil {
		r = Roster{}
	}
	b, err := json.Marshal([]string(r))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r *Roster) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		*r = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Roster", src)
	}
	return json.Unmarshal(raw, (*[]string)(r))
}

// TimestampLayout is the wire and storage format: naive, second precision, UTC.
const TimestampLayout = "2006-01-02T15:04:05"

var timestampLayouts = []string{
	time.RFC3339Nano,
	TimestampLayout,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04",
}

// Timestamp is a calendar time normalised to UTC at second precision.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Second)}
}

func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t), nil
		}
	}
	return Timestamp{}, fmt.Errorf("%w: %q is not a valid timestamp", ErrValidation, s)
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: match_date must be a string", ErrValidation)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Timestamp) Value() (driver.Value, error) {
	return t.UTC(), nil
}

func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = NewTimestamp(v)
		return nil
	case []byte:
		parsed, err := ParseTimestamp(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
}
