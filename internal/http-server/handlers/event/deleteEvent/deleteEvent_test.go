package deleteEvent

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fundraiser/internal/http-server/handlers/event/deleteEvent/mocks"
	"fundraiser/internal/lib/logger/handlers/slogdiscard"
	"fundraiser/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(mock *mocks.EventDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			eventID: "1",
			mockSetup: func(mock *mocks.EventDeleter) {
				mock.On("DeleteEvent", 1).Return(0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Event deleted successfully"}`,
		},
		{
			name:    "Blocked by registrations",
			eventID: "1",
			mockSetup: func(mock *mocks.EventDeleter) {
				mock.On("DeleteEvent", 1).Return(3, storage.ErrHasRegistrations)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"Cannot delete event with existing registrations","registrations_count":3}`,
		},
		{
			name:           "Invalid event ID format",
			eventID:        "invalid",
			mockSetup:      func(mock *mocks.EventDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:    "Event not found",
			eventID: "999",
			mockSetup: func(mock *mocks.EventDeleter) {
				mock.On("DeleteEvent", 999).Return(0, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Storage error",
			eventID: "1",
			mockSetup: func(mock *mocks.EventDeleter) {
				mock.On("DeleteEvent", 1).Return(0, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewEventDeleter(t)
			tc.mockSetup(mockDeleter)

			handler := New(logger, mockDeleter)

			router := chi.NewRouter()
			router.Delete("/api/events/{id}", handler)

			req, err := http.NewRequest("DELETE", "/api/events/"+tc.eventID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
