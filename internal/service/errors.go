package service

import "errors"

// ==================== 错误定义 ====================

// 错误类别，controller 按类别映射 HTTP 状态码
var (
	ErrUnauthorized = errors.New("Unauthorized")
	ErrForbidden    = errors.New("Forbidden")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
)

// 具体业务错误
var (
	ErrProductNotFound  = newError(ErrNotFound, "Product not found")
	ErrCategoryNotFound = newError(ErrNotFound, "Category not found")
	ErrCartItemNotFound = newError(ErrNotFound, "Cart item not found")
	ErrOrderNotFound    = newError(ErrNotFound, "Order not found")
	ErrUserNotFound     = newError(ErrNotFound, "User not found")

	ErrCartEmpty          = newError(ErrValidation, "Cart is empty")
	ErrInvalidQuantity    = newError(ErrValidation, "Quantity must be at least 1")
	ErrInsufficientStock  = newError(ErrValidation, "Insufficient stock")
	ErrInvalidRating      = newError(ErrValidation, "Rating must be between 1 and 5")
	ErrInvalidOrderStatus = newError(ErrValidation, "Invalid order status")
	ErrSlugExists         = newError(ErrValidation, "Category slug already exists")
	ErrInvalidState       = newError(ErrValidation, "Invalid or expired login state")
)

// kindError 带类别的业务错误，Error() 返回面向用户的文案
type kindError struct {
	kind error
	msg  string
}

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// ValidationError 构造校验错误
func ValidationError(msg string) error {
	return newError(ErrValidation, msg)
}
