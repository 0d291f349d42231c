package errors

import (
	"net/http"

	"storefront/internal/errors"
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
	parent    *BaseError
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
		parent:    e.root(),
	}
}

// Is lets copies made by WithDetails and Validation match their predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e == t || (e.parent != nil && e.parent == t)
}

func (e *BaseError) root() *BaseError {
	if e.parent != nil {
		return e.parent
	}

	return e
}

// Predefined error types. Messages are shown to merchants and shoppers as-is.
var (
	// Service availability
	ErrServiceNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"SERVICE_NOT_CONFIGURED",
		"الخدمة غير مهيأة حالياً",
		"",
	)

	ErrStorageNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"STORAGE_NOT_CONFIGURED",
		"تخزين الصور غير مهيأ حالياً",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"المستخدم غير موجود",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"البريد الإلكتروني مسجل بالفعل",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"فشل إنشاء الحساب",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"فشل تحديث الحساب",
		"",
	)

	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"يجب تسجيل الدخول أولاً",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"البريد الإلكتروني أو كلمة المرور غير صحيحة",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"انتهت الجلسة، يرجى تسجيل الدخول مرة أخرى",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"حدث خطأ أثناء معالجة كلمة المرور",
		"",
	)

	ErrPasswordResetInvalid = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_RESET_INVALID",
		"رابط إعادة تعيين كلمة المرور غير صالح أو منتهي الصلاحية",
		"",
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"فشل تسجيل الدخول عبر جوجل",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_TOKEN_INVALID",
		"رمز جوجل غير صالح",
		"",
	)

	ErrPhoneVerificationFailed = NewBaseError(
		http.StatusBadRequest,
		"PHONE_VERIFICATION_FAILED",
		"رمز التحقق غير صحيح أو منتهي الصلاحية",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"البيانات المدخلة غير صالحة",
		"",
	)

	// Catalog-related errors
	ErrCatalogNotFound = NewBaseError(
		http.StatusNotFound,
		"CATALOG_NOT_FOUND",
		"الكتالوج غير موجود",
		"",
	)

	ErrCatalogAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CATALOG_ALREADY_EXISTS",
		"لديك كتالوج بالفعل",
		"",
	)

	ErrSlugTaken = NewBaseError(
		http.StatusConflict,
		"SLUG_TAKEN",
		"هذا الرابط مستخدم بالفعل، اختر رابطاً آخر",
		"",
	)

	ErrCatalogAccessDenied = NewBaseError(
		http.StatusForbidden,
		"CATALOG_ACCESS_DENIED",
		"غير مصرح به",
		"",
	)

	ErrCatalogSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"CATALOG_SAVE_FAILED",
		"فشل حفظ إعدادات الكتالوج.",
		"",
	)

	ErrPlanFeatureUnavailable = NewBaseError(
		http.StatusForbidden,
		"PLAN_FEATURE_UNAVAILABLE",
		"هذه الميزة متاحة في الباقات المدفوعة فقط",
		"",
	)

	// Category-related errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"الفئة غير موجودة",
		"",
	)

	ErrInvalidParentCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PARENT_CATEGORY",
		"الفئة الرئيسية غير صالحة",
		"",
	)

	ErrCategoryCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CATEGORY_CREATE_FAILED",
		"فشل إنشاء الفئة.",
		"",
	)

	ErrCategoryUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CATEGORY_UPDATE_FAILED",
		"فشل تحديث الفئة.",
		"",
	)

	ErrCategoryDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"CATEGORY_DELETE_FAILED",
		"فشل حذف الفئة.",
		"",
	)

	// Item-related errors
	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"المنتج غير موجود",
		"",
	)

	ErrItemCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ITEM_CREATE_FAILED",
		"فشل إضافة المنتج.",
		"",
	)

	ErrItemUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ITEM_UPDATE_FAILED",
		"فشل تحديث المنتج.",
		"",
	)

	ErrItemDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"ITEM_DELETE_FAILED",
		"فشل حذف المنتج.",
		"",
	)

	// Media-related errors
	ErrMediaInvalid = NewBaseError(
		http.StatusBadRequest,
		"MEDIA_INVALID",
		"الملف المرفوع ليس صورة صالحة",
		"",
	)

	ErrMediaUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"MEDIA_UPLOAD_FAILED",
		"فشل رفع الصورة",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"فشل تنفيذ العملية، حاول مرة أخرى",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"حدث خطأ غير متوقع، حاول مرة أخرى لاحقاً",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"الصفحة غير موجودة",
		"",
	)
)

// Validation wraps ErrValidationFailed with the user-facing message of the first failing field.
func Validation(message string) error {
	if message == "" {
		return ErrValidationFailed
	}

	return &BaseError{
		httpCode:  ErrValidationFailed.httpCode,
		errorCode: ErrValidationFailed.errorCode,
		message:   message,
		parent:    ErrValidationFailed,
	}
}

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
	return "حدث خطأ في قاعدة البيانات، حاول مرة أخرى"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the driver error to errors.Is and errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
