package amqp

import (
	"encoding/json"
	"fmt"
	"time"
)

// HolidayFetchMessage asks the fetch worker to pull holiday suggestions for
// one country/month. Force makes the merge overwrite existing entries;
// unforced merges only fill absent date-keys so manual edits survive.
type HolidayFetchMessage struct {
	Country   string    `json:"country"`
	Year      int       `json:"year"`
	Month     int       `json:"month"` // 1-12
	Force     bool      `json:"force"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHolidayFetchMessage creates a fetch request for one country/month.
func NewHolidayFetchMessage(country string, year int, month time.Month, force bool) *HolidayFetchMessage {
	return &HolidayFetchMessage{
		Country:   country,
		Year:      year,
		Month:     int(month),
		Force:     force,
		Timestamp: time.Now(),
	}
}

// Validate rejects payloads the worker could not act on.
func (m *HolidayFetchMessage) Validate() error {
	if m.Country == "" {
		return fmt.Errorf("empty country")
	}
	if m.Year < 1 {
		return fmt.Errorf("invalid year %d", m.Year)
	}
	if m.Month < 1 || m.Month > 12 {
		return fmt.Errorf("invalid month %d", m.Month)
	}
	return nil
}

// ToJSON converts the message to JSON bytes
func (m *HolidayFetchMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// HolidayFetchMessageFromJSON creates a message from JSON bytes
func HolidayFetchMessageFromJSON(data []byte) (*HolidayFetchMessage, error) {
	var msg HolidayFetchMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return &msg, nil
}
