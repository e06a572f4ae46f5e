package getAllEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fundraiser/internal/http-server/handlers/event/getAllEvents/mocks"
	"fundraiser/internal/lib/logger/handlers/slogdiscard"
	"fundraiser/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testEvents := []models.Event{
		{
			ID:           1,
			Name:         "Charity Run",
			Date:         time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC),
			Location:     "Riverside Park",
			TicketPrice:  25.50,
			GoalAmount:   10000,
			CategoryID:   2,
			CategoryName: "Sports",
			IsActive:     true,
		},
		{
			ID:           2,
			Name:         "Gala Dinner",
			Date:         time.Date(2025, 10, 1, 19, 0, 0, 0, time.UTC),
			Location:     "Grand Hotel",
			TicketPrice:  120,
			GoalAmount:   50000,
			CategoryID:   1,
			CategoryName: "Gala",
			IsActive:     true,
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.EventsGetter)
		expectedStatus int
		expectedEvents []models.Event
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(mock *mocks.EventsGetter) {
				mock.On("GetActiveEvents").Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			expectedEvents: testEvents,
		},
		{
			name: "Empty list",
			mockSetup: func(mock *mocks.EventsGetter) {
				mock.On("GetActiveEvents").Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedEvents: []models.Event{},
		},
		{
			name: "Storage error",
			mockSetup: func(mock *mocks.EventsGetter) {
				mock.On("GetActiveEvents").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/api/events", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
				return
			}

			var got []models.Event
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tc.expectedEvents, got)
		})
	}
}
