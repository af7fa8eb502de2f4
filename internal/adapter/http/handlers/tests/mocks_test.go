package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/finance"
	"lifedash/internal/core/ports"
	"lifedash/internal/core/priority"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, userID uint64, filter priority.TaskFilter, now time.Time) ([]priority.ScoredTask, error) {
	args := m.Called(ctx, userID, filter, now)

	var tasks []priority.ScoredTask
	if value := args.Get(0); value != nil {
		tasks = value.([]priority.ScoredTask)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) ListPriorities(ctx context.Context, userID uint64, now time.Time, limit int) ([]priority.ScoredTask, error) {
	args := m.Called(ctx, userID, now, limit)

	var tasks []priority.ScoredTask
	if value := args.Get(0); value != nil {
		tasks = value.([]priority.ScoredTask)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

func (m *taskServiceMock) ToggleTaskStatus(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

type transactionServiceMock struct {
	mock.Mock
}

func (m *transactionServiceMock) ListTransactions(ctx context.Context, userID uint64, filter priority.TransactionFilter, now time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter, now)

	var txs []domain.Transaction
	if value := args.Get(0); value != nil {
		txs = value.([]domain.Transaction)
	}
	return txs, args.Error(1)
}

func (m *transactionServiceMock) Summary(ctx context.Context, userID uint64, now time.Time) (finance.Summary, error) {
	args := m.Called(ctx, userID, now)
	return args.Get(0).(finance.Summary), args.Error(1)
}

func (m *transactionServiceMock) CreateTransaction(ctx context.Context, input domain.CreateTransactionInput) (domain.Transaction, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Transaction), args.Error(1)
}

func (m *transactionServiceMock) UpdateTransaction(ctx context.Context, userID, transactionID uint64, input domain.UpdateTransactionInput) (domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID, input)
	return args.Get(0).(domain.Transaction), args.Error(1)
}

func (m *transactionServiceMock) DeleteTransaction(ctx context.Context, userID, transactionID uint64) error {
	return m.Called(ctx, userID, transactionID).Error(0)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.User, domain.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Get(1).(domain.Session), args.Error(2)
}

func (m *authServiceMock) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *authServiceMock) Verify(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *authServiceMock) ResendVerification(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *authServiceMock) Authenticate(ctx context.Context, token string) (domain.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *authServiceMock) Me(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

type scheduleServiceMock struct {
	mock.Mock
}

func (m *scheduleServiceMock) ListSchedules(ctx context.Context, userID uint64) ([]domain.Schedule, error) {
	args := m.Called(ctx, userID)

	var schedules []domain.Schedule
	if value := args.Get(0); value != nil {
		schedules = value.([]domain.Schedule)
	}
	return schedules, args.Error(1)
}

func (m *scheduleServiceMock) CreateSchedule(ctx context.Context, input domain.CreateScheduleInput) (domain.Schedule, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Schedule), args.Error(1)
}

func (m *scheduleServiceMock) UpdateSchedule(ctx context.Context, userID, scheduleID uint64, input domain.UpdateScheduleInput) (domain.Schedule, error) {
	args := m.Called(ctx, userID, scheduleID, input)
	return args.Get(0).(domain.Schedule), args.Error(1)
}

func (m *scheduleServiceMock) DeleteSchedule(ctx context.Context, userID, scheduleID uint64) error {
	return m.Called(ctx, userID, scheduleID).Error(0)
}

func (m *scheduleServiceMock) SendDueReminders(ctx context.Context, now time.Time) ([]domain.Schedule, error) {
	args := m.Called(ctx, now)

	var schedules []domain.Schedule
	if value := args.Get(0); value != nil {
		schedules = value.([]domain.Schedule)
	}
	return schedules, args.Error(1)
}

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) ListCategories(ctx context.Context, userID uint64, kind domain.CategoryKind) ([]domain.Category, error) {
	args := m.Called(ctx, userID, kind)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

type telegramServiceMock struct {
	mock.Mock
}

func (m *telegramServiceMock) SaveChatID(ctx context.Context, userID uint64, chatID string) error {
	return m.Called(ctx, userID, chatID).Error(0)
}

func (m *telegramServiceMock) Status(ctx context.Context, userID uint64) (ports.TelegramStatus, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(ports.TelegramStatus), args.Error(1)
}

func (m *telegramServiceMock) Disconnect(ctx context.Context, userID uint64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *telegramServiceMock) SendTest(ctx context.Context, userID uint64) error {
	return m.Called(ctx, userID).Error(0)
}

type budgetServiceMock struct {
	mock.Mock
}

func (m *budgetServiceMock) ListBudgets(ctx context.Context, userID uint64, month string, now time.Time) ([]finance.BudgetUsage, error) {
	args := m.Called(ctx, userID, month, now)

	var usages []finance.BudgetUsage
	if value := args.Get(0); value != nil {
		usages = value.([]finance.BudgetUsage)
	}
	return usages, args.Error(1)
}

func (m *budgetServiceMock) CreateBudget(ctx context.Context, input domain.CreateBudgetInput) (domain.Budget, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Budget), args.Error(1)
}

var _ ports.BudgetService = (*budgetServiceMock)(nil)
