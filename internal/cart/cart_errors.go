package cart

import (
	"net/http"

	"github.com/rohitguptaaa/AmazeMart/internal/pkg/apperror"
)

var (
	ErrInvalidQtyPayload = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity is required",
		http.StatusBadRequest,
	)

	ErrInvalidDrawerPayload = apperror.New(
		apperror.CodeInvalidInput,
		"Drawer state is required",
		http.StatusBadRequest,
	)
)
