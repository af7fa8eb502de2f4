package apierrors

const (
	MsgFailListTask       = "errorListTask"
	MsgFailGetTask        = "failGetTask"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailListPriorities = "failListPriorities"
)

const (
	MsgCategoryNotFound       = "categoryNotFound"
	MsgCategoryExists         = "categoryExists"
	MsgInvalidCategoryPayload = "invalidCategoryPayload"
	MsgFailListCategory       = "failListCategory"
	MsgFailCreateCategory     = "failCreateCategory"
)

const (
	MsgInvalidTransactionID      = "invalidTransactionID"
	MsgInvalidTransactionPayload = "invalidTransactionPayload"
	MsgTransactionNotFound       = "transactionNotFound"
	MsgFailListTransaction       = "failListTransaction"
	MsgFailCreateTransaction     = "failCreateTransaction"
	MsgFailUpdateTransaction     = "failUpdateTransaction"
	MsgFailDeleteTransaction     = "failDeleteTransaction"
	MsgFailTransactionSummary    = "failTransactionSummary"
)

const (
	MsgInvalidBudgetPayload = "invalidBudgetPayload"
	MsgBudgetExists         = "budgetExists"
	MsgFailListBudget       = "failListBudget"
	MsgFailCreateBudget     = "failCreateBudget"
)

const (
	MsgInvalidScheduleID      = "invalidScheduleID"
	MsgInvalidSchedulePayload = "invalidSchedulePayload"
	MsgScheduleNotFound       = "scheduleNotFound"
	MsgFailListSchedule       = "failListSchedule"
	MsgFailCreateSchedule     = "failCreateSchedule"
	MsgFailUpdateSchedule     = "failUpdateSchedule"
	MsgFailDeleteSchedule     = "failDeleteSchedule"
	MsgCronForbidden          = "cronForbidden"
	MsgFailSendReminders      = "failSendReminders"
)

const (
	MsgInvalidAuthPayload  = "invalidAuthPayload"
	MsgEmailTaken          = "emailTaken"
	MsgInvalidCredentials  = "invalidCredentials"
	MsgEmailNotVerified    = "emailNotVerified"
	MsgTooManyAttempts     = "tooManyAttempts"
	MsgUnauthorized        = "unauthorized"
	MsgTokenInvalid        = "tokenInvalid"
	MsgTokenExpired        = "tokenExpired"
	MsgUserNotFound        = "userNotFound"
	MsgFailRegister        = "failRegister"
	MsgFailLogin           = "failLogin"
	MsgFailLogout          = "failLogout"
	MsgFailVerify          = "failVerify"
	MsgFailResend          = "failResendVerification"
	MsgFailGetUser         = "failGetUser"
	MsgRegistered          = "registered"
	MsgLoggedOut           = "loggedOut"
	MsgEmailVerified       = "emailVerified"
	MsgVerificationResent  = "verificationResent"
	MsgTelegramSaved       = "telegramSaved"
	MsgTelegramRemoved     = "telegramRemoved"
	MsgTelegramTestSent    = "telegramTestSent"
	MsgInvalidTelegramData = "invalidTelegramPayload"
	MsgTelegramNotLinked   = "telegramNotLinked"
	MsgFailTelegramSave    = "failTelegramSave"
	MsgFailTelegramStatus  = "failTelegramStatus"
	MsgFailTelegramRemove  = "failTelegramRemove"
	MsgFailTelegramSend    = "failTelegramSend"
)
