package entities

import (
	"fmt"
	"time"
)

// Gender of a synthesized participant
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Sentiment labels a feedback template bucket. It only selects the template
// pool and the completion range, it is not a sentiment-analysis output.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// EventEpoch is the fixed calendar start of the event; day-relative
// registration windows are computed from it.
var EventEpoch = time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)

// EventDays is the number of event days; Day is always in [1, EventDays].
const EventDays = 3

// Participant is one synthesized row of the dataset
type Participant struct {
	ID               string    `json:"participant_id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	Gender           Gender    `json:"gender"`
	College          string    `json:"college"`
	Region           string    `json:"region"`
	Domain           string    `json:"domain"`
	Day              int       `json:"day"`
	RegistrationTime time.Time `json:"registration_time"`
	HoursSpent       float64   `json:"hours_spent"`
	CompletionPct    int       `json:"completion_pct"`
	Feedback         string    `json:"feedback"`
}

// DayWindow returns the registration window of the participant's day.
func DayWindow(day int) (start, end time.Time) {
	start = EventEpoch.AddDate(0, 0, day-1)
	end = start.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return start, end
}

// ParticipantID formats the sequential dense identifier for row i (1-based).
func ParticipantID(i int) string {
	return fmt.Sprintf("P%03d", i)
}
