package entity

import "time"

type TriviaQuestion struct {
	ID           string   `mapstructure:"-"`
	Question     string   `mapstructure:"question"`
	Answers      []string `mapstructure:"answers"`
	CorrectIndex int      `mapstructure:"correctAnswerIndex"`
	StartDate    string   `mapstructure:"startDate"`
	EndDate      string   `mapstructure:"endDate"`
	Points       int64    `mapstructure:"points"`

	// SkippedUsers never contains duplicates; the counter, when present,
	// tracks the growth of the set best-effort.
	SkippedUsers []string `mapstructure:"skippedUsers"`
	Skips        *int     `mapstructure:"skips"`

	RawClient any `mapstructure:"client"`
}

func (q *TriviaQuestion) ClientRef() ClientRef {
	return DecodeClientRef(q.RawClient)
}

// ActiveAt reports whether t falls inside the question's active window. A
// question with an unparseable window is never active.
func (q *TriviaQuestion) ActiveAt(t time.Time) bool {
	start, err := time.Parse(time.RFC3339, q.StartDate)
	if err != nil {
		return false
	}

	end, err := time.Parse(time.RFC3339, q.EndDate)
	if err != nil {
		return false
	}

	return !t.Before(start) && !t.After(end)
}
