package domain

import "errors"

// Sentinel errors mapped to HTTP status codes by the API error handler.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("access forbidden")
	ErrShopNotFound       = errors.New("shop not found")
	ErrShopExists         = errors.New("user already owns a shop")
	ErrShopNameRequired   = errors.New("shop name is required for owners")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrSupplierNotFound   = errors.New("supplier not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrDuplicateSKU       = errors.New("sku already in use")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrPurchaseNotFound   = errors.New("purchase not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrUnknownReportType  = errors.New("unknown report type")
	ErrReportGeneration   = errors.New("report generation failed")
	ErrInvalidStockAction = errors.New("invalid stock action")
)
