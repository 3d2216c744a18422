package apperr

import "github.com/tuanvumaihuynh/product-catalog/pkg/zerror"

const (
	ValidationErrorCode     = "VALIDATION_FAILED"
	ProductNotFoundCode     = "PRODUCT_NOT_FOUND"
	ProductIDNotAllowedCode = "PRODUCT_ID_NOT_ALLOWED"
)

var (
	ValidationErr          = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	ProductNotFoundErr     = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	ProductIDNotAllowedErr = zerror.NewBadRequest(ProductIDNotAllowedCode, "id must not be provided when creating a product")
)
