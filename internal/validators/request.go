package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/internal/utils"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/go-playground/validator/v10"
)

// Field names as they appear in request bodies.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDisplayName = "displayName"
)

// accountEmailPattern is deliberately looser than RFC 5322: one "@" and a
// dotted domain with an alphabetic TLD of two or more letters.
var accountEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var passwordLengthMessage = fmt.Sprintf("Password must be between 8 characters and %d bytes", utils.MaxPasswordBytes)

// messages holds the client-facing message for each field and rule.
var messages = map[string]map[string]string{
	FieldEmail: {
		"required":      "Email is required",
		"account_email": "Invalid email address",
		"max":           "Email must be less than 255 characters",
	},
	FieldPassword: {
		"required": "Password is required",
		"min":            passwordLengthMessage,
		"password_bytes": passwordLengthMessage,
	},
	FieldDisplayName: {
		"required": "Display name is required",
		"max":      "Display name must be less than 100 characters",
	},
}

// RequestValidator validates the account DTOs: [models.RegisterRequest] and
// [models.LoginRequest], by value or pointer.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with the
// "account_email" and "password_bytes" rules registered.
func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	_ = validate.RegisterValidation("account_email", func(fl validator.FieldLevel) bool {
		return accountEmailPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("password_bytes", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= utils.MaxPasswordBytes
	})

	return &RequestValidator{validate: validate}
}

// Validate checks obj against its struct tags. When fields are given only
// those struct fields (Go names, e.g. "Email") are checked.
//
// Rule failures are returned as [FieldErrors]; ErrUnsupportedType is
// returned for anything other than the account DTOs.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest, models.LoginRequest, *models.LoginRequest:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	out := make(FieldErrors, len(validationErrs))
	for _, fe := range validationErrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()][fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
