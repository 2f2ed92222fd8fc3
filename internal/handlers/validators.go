package handlers

import (
	"fmt"
	"log/slog"
	"strings"

	portssvc "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/services"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators adds the currency_code rule to gin's validator: the field must name a
// currency in the configured rate table (case-insensitive).
func registerValidators(currency portssvc.CurrencyReaderSvc) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		slog.Warn("gin validator engine is not go-playground/validator; currency_code rule not registered")
		return
	}
	if err := v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		return currency.IsSupported(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
	}); err != nil {
		slog.Error("Failed to register currency_code validator", slog.String("error", err.Error()))
	}
}

// bindingErrorMessage turns validator errors into a short client-facing message.
func bindingErrorMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Invalid query parameters"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "currency_code":
			msgs = append(msgs, fmt.Sprintf("unsupported currency: %v", fe.Value()))
		case "required":
			msgs = append(msgs, strings.ToLower(fe.Field())+" is required")
		case "min", "max":
			msgs = append(msgs, strings.ToLower(fe.Field())+" must be between the allowed bounds")
		default:
			msgs = append(msgs, strings.ToLower(fe.Field())+" is invalid")
		}
	}
	return "Invalid query parameters: " + strings.Join(msgs, "; ")
}
