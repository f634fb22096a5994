package catalog

import (
	"net/http"

	"github.com/rohitguptaaa/AmazeMart/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Category not found",
		http.StatusNotFound,
	)

	ErrInvalidQuery = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid browse query",
		http.StatusBadRequest,
	)
)
