package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp":   {},
	"requestId":   {},
	"createdAt":   {},
	"requestedAt": {},
	"paymentDate": {},
}

func prepareRequest(method, path string, body io.Reader) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func (ta *TestApp) resetData(t testing.TB) {
	_, err := ta.DB.Exec(context.Background(), `
		TRUNCATE payments, booking_seats, bookings, schedules, screens, movies RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
}

func (ta *TestApp) seedMovie(t testing.TB, title, genre, price string) int {
	var id int
	err := ta.DB.QueryRow(context.Background(), `
		INSERT INTO movies (title, genre, poster_url, ticket_price)
		VALUES ($1, $2, '', $3)
		RETURNING id
	`, title, genre, price).Scan(&id)
	require.NoError(t, err)

	return id
}

func (ta *TestApp) seedScreen(t testing.TB, screenNumber, capacity int) int {
	var id int
	err := ta.DB.QueryRow(context.Background(), `
		INSERT INTO screens (screen_number, capacity)
		VALUES ($1, $2)
		RETURNING id
	`, screenNumber, capacity).Scan(&id)
	require.NoError(t, err)

	return id
}

func (ta *TestApp) seedSchedule(t testing.TB, movieID, screenID int, showDate, timeSlot string) int {
	var id int
	err := ta.DB.QueryRow(context.Background(), `
		INSERT INTO schedules (movie_id, screen_id, show_date, time_slot)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, movieID, screenID, showDate, timeSlot).Scan(&id)
	require.NoError(t, err)

	return id
}

// seedScreening seeds one movie, one screen and one published schedule,
// returning the schedule id.
func (ta *TestApp) seedScreening(t testing.TB, screenNumber, capacity int, showDate, timeSlot string) (int, int) {
	movieID := ta.seedMovie(t, "Interstellar", "Sci-Fi", "12.50")
	screenID := ta.seedScreen(t, screenNumber, capacity)
	scheduleID := ta.seedSchedule(t, movieID, screenID, showDate, timeSlot)

	return movieID, scheduleID
}

func (ta *TestApp) seatStatus(t testing.TB, bookingID, seatID int) string {
	var status string
	err := ta.DB.QueryRow(context.Background(), `
		SELECT status FROM booking_seats WHERE id = $1 AND booking_id = $2
	`, seatID, bookingID).Scan(&status)
	require.NoError(t, err)

	return status
}
