package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/pedroramon/hotel-backend/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ValidationMessage is the user-visible message of every request
// validation failure; the per-field reasons travel in the details.
const ValidationMessage = "Erro de validação"

// MoneyOutOfBoundsMessage is the field reason for amounts that do not fit
// numeric(10,2).
const MoneyOutOfBoundsMessage = "numeric value out of bounds (<8 digits>.<2 digits> expected)"

var validate *validator.Validate

func NewValidator() *validator.Validate {
	validate = validator.New()
	// report JSON field names so the error map matches the request body
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimals are compared as numbers by gte/lte
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	_ = validate.RegisterValidation("money", isMoney)
	return validate
}

func GetValidator() *validator.Validate {
	return validate
}

func ValidateRequest(req interface{}) error {
	if validate == nil {
		return ierr.NewError("validator not initialized").
			WithHint("Validator must be initialized before using it").
			Mark(ierr.ErrSystem)
	}

	if err := validate.Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			details = lo.SliceToMap(validateErrs, func(fe validator.FieldError) (string, any) {
				return fe.Field(), fieldMessage(fe)
			})
		}
		return ierr.WithError(err).
			WithHint(ValidationMessage).
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.String {
			return "must not be blank"
		}
		return "must not be null"
	case "notblank":
		return "must not be blank"
	case "isdefault":
		return "must be null"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "money":
		return MoneyOutOfBoundsMessage
	case "max":
		return "size must be at most " + fe.Param()
	default:
		return fe.Error()
	}
}

// isMoney checks a decimal against numeric(10,2). The custom type func hands
// validators a float64, so the decimal is read back from the parent struct.
func isMoney(fl validator.FieldLevel) bool {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return false
	}
	field := parent.FieldByName(fl.StructFieldName())
	if !field.IsValid() {
		return false
	}
	switch d := field.Interface().(type) {
	case decimal.Decimal:
		return types.FitsMoney(d)
	case *decimal.Decimal:
		return d == nil || types.FitsMoney(*d)
	default:
		return false
	}
}
