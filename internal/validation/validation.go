// Package validation wraps go-playground/validator with the rules of the
// catalog and account inputs.
package validation

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrInvalid matches every *Error through errors.Is.
var ErrInvalid = errors.New("validation failed")

// allowedImageExtensions lists the accepted image file extensions, lower case.
var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// MaxQuantity is the largest stock or purchase quantity an INTEGER column holds.
const MaxQuantity = math.MaxInt32

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// maxPrice is the largest value of a NUMERIC(12,2) column.
var maxPrice = decimal.RequireFromString("9999999999.99")

// Error lists the failed fields and the rule each one broke.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// NewError builds an Error for a single field.
func NewError(field, rule string) *Error {
	return &Error{Fields: map[string]string{field: rule}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Decimals reach the "price" rule as their exact string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("image_ext", func(fl validator.FieldLevel) bool {
		return AllowedImage(fl.Field().String())
	})
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && ValidPrice(d)
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	return v
}

// ValidPrice reports whether d fits a NUMERIC(12,2) price column without
// rounding: non-negative, at most 9999999999.99, at most two decimal places.
func ValidPrice(d decimal.Decimal) bool {
	if d.IsNegative() || d.GreaterThan(maxPrice) {
		return false
	}
	return d.Equal(d.Truncate(2))
}

// AllowedImage reports whether name ends in one of the accepted image
// extensions, ignoring case.
func AllowedImage(name string) bool {
	_, ok := allowedImageExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Struct validates s and returns an *Error describing every failed field, or
// nil when s is valid. prefix, when non-empty, is prepended to field names.
func Struct(s any, prefix string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		if prefix != "" {
			name = prefix + name
		}
		fields[name] = fe.Tag()
	}
	return &Error{Fields: fields}
}
