package createEvent

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fundraiser/internal/http-server/handlers/event/createEvent/mocks"
	"fundraiser/internal/lib/logger/handlers/slogdiscard"
	"fundraiser/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"name": "Charity Run",
				"description": "5k run along the river",
				"date": "2025-09-10T09:00:00Z",
				"location": "Riverside Park",
				"ticket_price": 25.50,
				"goal_amount": 10000,
				"category_id": 2
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", models.Event{
					Name:        "Charity Run",
					Description: strPtr("5k run along the river"),
					Date:        testTime,
					Location:    "Riverside Park",
					TicketPrice: 25.50,
					GoalAmount:  10000,
					CategoryID:  2,
				}).Return(123, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","message":"Event created successfully","id":123}`,
		},
		{
			name: "Client-sent is_active and current_amount are ignored",
			requestBody: `{
				"name": "Charity Run",
				"date": "2025-09-10T09:00:00Z",
				"location": "Riverside Park",
				"category_id": 2,
				"is_active": false,
				"current_amount": 9999
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", models.Event{
					Name:       "Charity Run",
					Date:       testTime,
					Location:   "Riverside Park",
					CategoryID: 2,
				}).Return(124, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","message":"Event created successfully","id":124}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing name",
			requestBody: `{
				"date": "2025-09-10T09:00:00Z",
				"location": "Riverside Park",
				"category_id": 2
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Name")
			},
		},
		{
			name: "Missing location and category_id",
			requestBody: `{
				"name": "Charity Run",
				"date": "2025-09-10T09:00:00Z"
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Location")
				assert.Contains(t, body, "CategoryID")
			},
		},
		{
			name: "Negative ticket price",
			requestBody: `{
				"name": "Charity Run",
				"date": "2025-09-10T09:00:00Z",
				"location": "Riverside Park",
				"ticket_price": -5,
				"category_id": 2
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "TicketPrice")
			},
		},
		{
			name: "Storage error",
			requestBody: `{
				"name": "Charity Run",
				"date": "2025-09-10T09:00:00Z",
				"location": "Riverside Park",
				"category_id": 2
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", models.Event{
					Name:       "Charity Run",
					Date:       testTime,
					Location:   "Riverside Park",
					CategoryID: 2,
				}).Return(0, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/api/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
