package getEvent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fundraiser/internal/http-server/handlers/event/getEvent/mocks"
	"fundraiser/internal/lib/logger/handlers/slogdiscard"
	"fundraiser/internal/models"
	"fundraiser/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC)
	testEvent := &models.Event{
		ID:           1,
		Name:         "Charity Run",
		Date:         testTime,
		Location:     "Riverside Park",
		TicketPrice:  25.50,
		GoalAmount:   10000,
		CategoryID:   2,
		CategoryName: "Sports",
		IsActive:     true,
	}
	testRegistrations := []models.Registration{
		{
			ID:               2,
			EventID:          1,
			FullName:         "Jamie Lee",
			Email:            "jamie@example.com",
			TicketsCount:     2,
			TotalAmount:      51,
			RegistrationDate: testTime.Add(2 * time.Hour),
		},
		{
			ID:               1,
			EventID:          1,
			FullName:         "Alex Chen",
			Email:            "alex@example.com",
			TicketsCount:     1,
			TotalAmount:      25.50,
			RegistrationDate: testTime,
		},
	}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(mock *mocks.EventGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success with registrations",
			eventID: "1",
			mockSetup: func(mock *mocks.EventGetter) {
				mock.On("GetEventWithRegistrations", 1).Return(testEvent, testRegistrations, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, 1, resp.ID)
				assert.Equal(t, "Charity Run", resp.Name)
				assert.Equal(t, "Sports", resp.CategoryName)
				require.Len(t, resp.Registrations, 2)
				assert.Equal(t, "Jamie Lee", resp.Registrations[0].FullName)
				assert.Equal(t, "Alex Chen", resp.Registrations[1].FullName)
			},
		},
		{
			name:    "Success without registrations",
			eventID: "1",
			mockSetup: func(mock *mocks.EventGetter) {
				mock.On("GetEventWithRegistrations", 1).Return(testEvent, []models.Registration{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, 1, resp.ID)
				assert.Empty(t, resp.Registrations)
			},
		},
		{
			name:           "Invalid event ID format",
			eventID:        "invalid",
			mockSetup:      func(mock *mocks.EventGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:    "Event not found",
			eventID: "999",
			mockSetup: func(mock *mocks.EventGetter) {
				mock.On("GetEventWithRegistrations", 999).Return(nil, nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Storage error",
			eventID: "1",
			mockSetup: func(mock *mocks.EventGetter) {
				mock.On("GetEventWithRegistrations", 1).Return(nil, nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			router := chi.NewRouter()
			router.Get("/api/events/{id}", handler)

			req, err := http.NewRequest("GET", "/api/events/"+tc.eventID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
