package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/adapter/http/handlers"
	"lifedash/internal/adapter/http/middleware"
	"lifedash/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCronSecret = "cron-secret"

func newScheduleRouter(serviceMock *scheduleServiceMock) *gin.Engine {
	handler := handlers.NewScheduleHandler(serviceMock).WithClock(fixedClock)

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.POST("/cron/schedule-reminder", middleware.CronSecretMiddleware(testCronSecret), handler.SendReminders)

	private := api.Group("", middleware.SetUserID(testUserID))
	private.GET("/schedules", handler.ListSchedules)
	private.POST("/schedules", handler.CreateSchedule)
	private.PATCH("/schedules/:id", handler.UpdateSchedule)
	private.DELETE("/schedules/:id", handler.DeleteSchedule)
	return router
}

func TestScheduleHandler_Create(t *testing.T) {
	t.Run("defaults reminder lead time", func(t *testing.T) {
		serviceMock := new(scheduleServiceMock)
		serviceMock.On("CreateSchedule", mock.Anything, mock.MatchedBy(func(input domain.CreateScheduleInput) bool {
			return input.UserID == testUserID &&
				input.Day == domain.Tuesday &&
				input.StartTime == "10:00" &&
				input.ReminderHoursBefore == 1
		})).Return(domain.Schedule{ID: 2, CourseName: "Basis Data", Day: domain.Tuesday, StartTime: "10:00", EndTime: "12:00", Semester: "Genap 2025/2026", ReminderHoursBefore: 1}, nil).Once()

		rec := doRequest(newScheduleRouter(serviceMock), http.MethodPost, "/api/schedules",
			`{"course_name":"Basis Data","day":"Tuesday","start_time":"10:00","end_time":"12:00","semester":"Genap 2025/2026"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got dto.ScheduleItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Equal(t, "tuesday", got.Day)
		require.Equal(t, 1, got.ReminderHoursBefore)
		serviceMock.AssertExpectations(t)
	})

	t.Run("end before start", func(t *testing.T) {
		serviceMock := new(scheduleServiceMock)

		rec := doRequest(newScheduleRouter(serviceMock), http.MethodPost, "/api/schedules",
			`{"course_name":"Basis Data","day":"tuesday","start_time":"12:00","end_time":"10:00","semester":"Genap"}`)

		requireAPIError(t, rec, http.StatusBadRequest, "Invalid schedule payload")
		serviceMock.AssertNotCalled(t, "CreateSchedule", mock.Anything, mock.Anything)
	})
}

func TestScheduleHandler_DeleteNotFound(t *testing.T) {
	serviceMock := new(scheduleServiceMock)
	serviceMock.On("DeleteSchedule", mock.Anything, testUserID, uint64(8)).Return(domain.ErrScheduleNotFound).Once()

	rec := doRequest(newScheduleRouter(serviceMock), http.MethodDelete, "/api/schedules/8", "")

	requireAPIError(t, rec, http.StatusNotFound, "Schedule not found")
	serviceMock.AssertExpectations(t)
}

func TestScheduleHandler_SendReminders(t *testing.T) {
	send := func(router *gin.Engine, secret string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/cron/schedule-reminder", nil)
		if secret != "" {
			req.Header.Set(middleware.CronSecretHeader, secret)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("reports sent schedules", func(t *testing.T) {
		serviceMock := new(scheduleServiceMock)
		serviceMock.On("SendDueReminders", mock.Anything, fixedNow).
			Return([]domain.Schedule{{ID: 1}, {ID: 4}}, nil).Once()

		rec := send(newScheduleRouter(serviceMock), testCronSecret)

		require.Equal(t, http.StatusOK, rec.Code)
		var got dto.SendRemindersResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Equal(t, []uint64{1, 4}, got.SentTo)
		require.Equal(t, 2, got.Count)
		serviceMock.AssertExpectations(t)
	})

	t.Run("wrong secret", func(t *testing.T) {
		serviceMock := new(scheduleServiceMock)

		rec := send(newScheduleRouter(serviceMock), "nope")

		requireAPIError(t, rec, http.StatusForbidden, "Forbidden")
		serviceMock.AssertNotCalled(t, "SendDueReminders", mock.Anything, mock.Anything)
	})

	t.Run("service failure", func(t *testing.T) {
		serviceMock := new(scheduleServiceMock)
		serviceMock.On("SendDueReminders", mock.Anything, fixedNow).Return(nil, errors.New("db is down")).Once()

		rec := send(newScheduleRouter(serviceMock), testCronSecret)

		requireAPIError(t, rec, http.StatusInternalServerError, "Failed to send class reminders")
		serviceMock.AssertExpectations(t)
	})
}
