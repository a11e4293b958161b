package amqp

import (
	"testing"
	"time"
)

func TestHolidayFetchMessageRoundTrip(t *testing.T) {
	msg := NewHolidayFetchMessage("INDIA", 2024, time.February, true)

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	back, err := HolidayFetchMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Country != "INDIA" || back.Year != 2024 || back.Month != 2 || !back.Force {
		t.Fatalf("round trip = %+v", back)
	}
}

func TestHolidayFetchMessageValidate(t *testing.T) {
	tests := []struct {
		name    string
		msg     HolidayFetchMessage
		wantErr bool
	}{
		{"valid", HolidayFetchMessage{Country: "INDIA", Year: 2024, Month: 2}, false},
		{"empty country", HolidayFetchMessage{Year: 2024, Month: 2}, true},
		{"zero year", HolidayFetchMessage{Country: "INDIA", Month: 2}, true},
		{"month zero", HolidayFetchMessage{Country: "INDIA", Year: 2024, Month: 0}, true},
		{"month thirteen", HolidayFetchMessage{Country: "INDIA", Year: 2024, Month: 13}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestHolidayFetchMessageFromJSONRejectsGarbage(t *testing.T) {
	for _, body := range []string{"", "{", `{"country":"","year":0,"month":0}`} {
		if _, err := HolidayFetchMessageFromJSON([]byte(body)); err == nil {
			t.Fatalf("payload %q should be rejected", body)
		}
	}
}
