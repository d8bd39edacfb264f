package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeRevokedToken    ErrorCode = "REVOKED_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeUserBanned      ErrorCode = "USER_BANNED"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"
	ErrCodeGoogleToken     ErrorCode = "INVALID_GOOGLE_TOKEN"

	// Ad errors
	ErrCodeAdNotFound    ErrorCode = "AD_NOT_FOUND"
	ErrCodeNotAdOwner    ErrorCode = "NOT_AD_OWNER"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeUploadFailed  ErrorCode = "UPLOAD_FAILED"

	// Rate / comment errors
	ErrCodeInvalidScore     ErrorCode = "INVALID_SCORE"
	ErrCodeRateExists       ErrorCode = "RATE_EXISTS"
	ErrCodeRateNotFound     ErrorCode = "RATE_NOT_FOUND"
	ErrCodeCommentExists    ErrorCode = "COMMENT_EXISTS"
	ErrCodeCommentNotFound  ErrorCode = "COMMENT_NOT_FOUND"
	ErrCodeInvalidBanStatus ErrorCode = "INVALID_BAN_STATUS"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Kind phân loại lỗi để controller chọn HTTP status
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindConflict
	KindForbidden
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// HTTPStatus trả về HTTP status tương ứng với Kind
func (k Kind) HTTPStatus() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Kind    Kind
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(kind Kind, code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NotFound(code ErrorCode, message string) *AppError {
	return NewAppError(KindNotFound, code, message, nil)
}

func BadRequest(code ErrorCode, message string, err error) *AppError {
	return NewAppError(KindBadRequest, code, message, err)
}

func Conflict(code ErrorCode, message string, err error) *AppError {
	return NewAppError(KindConflict, code, message, err)
}

func Forbidden(code ErrorCode, message string) *AppError {
	return NewAppError(KindForbidden, code, message, nil)
}

func Unauthorized(code ErrorCode, message string, err error) *AppError {
	return NewAppError(KindUnauthorized, code, message, err)
}

func Internal(message string, err error) *AppError {
	return NewAppError(KindInternal, ErrCodeDBError, message, err)
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// KindOf trả về Kind của err, KindInternal nếu không phải AppError
func KindOf(err error) Kind {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Kind
	}
	return KindInternal
}

// Is kiểm tra err có phải AppError thuộc kind không
func Is(err error, kind Kind) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Kind == kind
}
