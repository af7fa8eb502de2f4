package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

type scheduleRepositoryMock struct {
	mock.Mock
}

func (m *scheduleRepositoryMock) ListSchedules(ctx context.Context, userID uint64) ([]domain.Schedule, error) {
	args := m.Called(ctx, userID)
	var schedules []domain.Schedule
	if value := args.Get(0); value != nil {
		schedules = value.([]domain.Schedule)
	}
	return schedules, args.Error(1)
}

func (m *scheduleRepositoryMock) ListSchedulesForDay(ctx context.Context, day domain.Weekday) ([]domain.ScheduleWithChat, error) {
	args := m.Called(ctx, day)
	var schedules []domain.ScheduleWithChat
	if value := args.Get(0); value != nil {
		schedules = value.([]domain.ScheduleWithChat)
	}
	return schedules, args.Error(1)
}

func (m *scheduleRepositoryMock) CreateSchedule(ctx context.Context, input domain.CreateScheduleInput) (domain.Schedule, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Schedule), args.Error(1)
}

func (m *scheduleRepositoryMock) UpdateSchedule(ctx context.Context, userID, scheduleID uint64, input domain.UpdateScheduleInput) (domain.Schedule, error) {
	args := m.Called(ctx, userID, scheduleID, input)
	return args.Get(0).(domain.Schedule), args.Error(1)
}

func (m *scheduleRepositoryMock) DeleteSchedule(ctx context.Context, userID, scheduleID uint64) error {
	return m.Called(ctx, userID, scheduleID).Error(0)
}

type senderMock struct {
	mock.Mock
}

func (m *senderMock) SendMessage(ctx context.Context, chatID, text string) error {
	return m.Called(ctx, chatID, text).Error(0)
}

type mailerMock struct {
	mock.Mock
}

func (m *mailerMock) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) GetUserByID(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) MarkEmailVerified(ctx context.Context, userID uint64, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

func (m *userRepositoryMock) SetTelegramChatID(ctx context.Context, userID uint64, chatID *string) error {
	return m.Called(ctx, userID, chatID).Error(0)
}

type tokenRepositoryMock struct {
	mock.Mock
}

func (m *tokenRepositoryMock) CreateToken(ctx context.Context, token domain.VerificationToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *tokenRepositoryMock) GetToken(ctx context.Context, token string) (domain.VerificationToken, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.VerificationToken), args.Error(1)
}

func (m *tokenRepositoryMock) DeleteToken(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *tokenRepositoryMock) DeleteUserTokens(ctx context.Context, userID uint64) error {
	return m.Called(ctx, userID).Error(0)
}

type sessionStoreMock struct {
	mock.Mock
}

func (m *sessionStoreMock) Save(ctx context.Context, session domain.Session, ttl time.Duration) error {
	return m.Called(ctx, session, ttl).Error(0)
}

func (m *sessionStoreMock) Get(ctx context.Context, token string) (domain.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *sessionStoreMock) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type limiterMock struct {
	mock.Mock
}

func (m *limiterMock) Allow(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type budgetRepositoryMock struct {
	mock.Mock
}

func (m *budgetRepositoryMock) ListBudgets(ctx context.Context, userID uint64, month string) ([]domain.Budget, error) {
	args := m.Called(ctx, userID, month)
	var budgets []domain.Budget
	if value := args.Get(0); value != nil {
		budgets = value.([]domain.Budget)
	}
	return budgets, args.Error(1)
}

func (m *budgetRepositoryMock) CreateBudget(ctx context.Context, input domain.CreateBudgetInput) (domain.Budget, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Budget), args.Error(1)
}

// transactionListMock serves ListTransactions only.
type transactionListMock struct {
	ports.TransactionRepository
	mock.Mock
}

func (m *transactionListMock) ListTransactions(ctx context.Context, userID uint64) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	var txs []domain.Transaction
	if value := args.Get(0); value != nil {
		txs = value.([]domain.Transaction)
	}
	return txs, args.Error(1)
}
