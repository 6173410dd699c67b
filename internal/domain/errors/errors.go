package errors

import (
	"net/http"

	"passport/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Credential errors. Wrong password, unknown email and wrong tenant
	// partition are deliberately indistinguishable.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
		"",
	)

	ErrEmailExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_EXISTS",
		"此電子郵件已被註冊",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	// Token and session errors
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"無效或已過期的權杖",
		"",
	)

	// ErrSessionInvalid collapses missing, revoked, expired and
	// hash-mismatched refresh sessions into a single outcome.
	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"無效或已過期的登入階段",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusForbidden,
		"SESSION_LIMIT_EXCEEDED",
		"已達同時登入裝置數量上限",
		"",
	)

	// Google OAuth and linking errors
	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"OAuth 認證失敗",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"無效的 OAuth 狀態參數",
		"",
	)

	ErrCrossTenantMismatch = NewBaseError(
		http.StatusForbidden,
		"CROSS_TENANT_MISMATCH",
		"此 Google 帳號已綁定至其他組織",
		"",
	)

	ErrSSODisabled = NewBaseError(
		http.StatusForbidden,
		"SSO_DISABLED",
		"此組織未啟用 Google 登入",
		"",
	)

	ErrAutoProvisionDisabled = NewBaseError(
		http.StatusForbidden,
		"AUTO_PROVISION_DISABLED",
		"此組織未開放自動建立帳號",
		"",
	)

	ErrEmailMismatch = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_MISMATCH",
		"Google 帳號電子郵件與使用者不符",
		"",
	)

	ErrAlreadyLinked = NewBaseError(
		http.StatusConflict,
		"ALREADY_LINKED",
		"此 Google 帳號已綁定至其他使用者",
		"",
	)

	ErrNotLinked = NewBaseError(
		http.StatusNotFound,
		"NOT_LINKED",
		"此使用者未綁定 Google 帳號",
		"",
	)

	ErrLastAuthMethod = NewBaseError(
		http.StatusBadRequest,
		"LAST_AUTH_METHOD",
		"無法移除最後一種登入方式",
		"",
	)

	// OTP errors
	ErrOtpNotFound = NewBaseError(
		http.StatusNotFound,
		"OTP_NOT_FOUND",
		"驗證碼不存在或已過期",
		"",
	)

	ErrOtpInvalid = NewBaseError(
		http.StatusBadRequest,
		"OTP_INVALID",
		"驗證碼錯誤",
		"",
	)

	ErrOtpAttemptsExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"OTP_ATTEMPTS_EXCEEDED",
		"驗證碼嘗試次數已達上限",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"請求過於頻繁，請稍後再試",
		"",
	)

	// Password errors
	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"密碼強度不足",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	// Tenant errors
	ErrTenantNotFound = NewBaseError(
		http.StatusNotFound,
		"TENANT_NOT_FOUND",
		"找不到該組織",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
