package jsonfile

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"reviews_api/internal/domain"
)

// reviewRecord is the on-disk element. Pointers distinguish a missing or
// null field from a zero value; "" is an acceptable title or text.
type reviewRecord struct {
	ID     *int64  `json:"id" validate:"required"`
	Title  *string `json:"title" validate:"required,max=50"`
	Text   *string `json:"text" validate:"required,max=300"`
	Rating *int    `json:"rating" validate:"required,min=1,max=5"`
}

// validator caches struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report JSON names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func mapReview(idx int, raw json.RawMessage) (domain.Review, error) {
	// encoding/json matches struct keys case-insensitively; only the exact
	// lowercase keys count, everything else is ignored.
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return domain.Review{}, &domain.FieldValidationError{Index: idx, Rule: domain.RuleType, Param: "object", Err: err}
	}

	var rec reviewRecord
	for _, f := range []struct {
		key string
		dst any
	}{
		{"id", &rec.ID},
		{"title", &rec.Title},
		{"text", &rec.Text},
		{"rating", &rec.Rating},
	} {
		v, ok := obj[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return domain.Review{}, typeError(idx, f.key, err)
		}
	}
	if err := validate.Struct(rec); err != nil {
		return domain.Review{}, fieldError(idx, err)
	}
	return domain.Review{
		ID:     *rec.ID,
		Title:  *rec.Title,
		Text:   *rec.Text,
		Rating: *rec.Rating,
	}, nil
}

func typeError(idx int, field string, err error) error {
	param := "valid JSON"
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		param = strings.TrimPrefix(ute.Type.String(), "*")
	}
	return &domain.FieldValidationError{Index: idx, Field: field, Rule: domain.RuleType, Param: param, Err: err}
}

func fieldError(idx int, err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return &domain.FieldValidationError{Index: idx, Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param(), Err: err}
	}
	return &domain.FieldValidationError{Index: idx, Rule: "invalid", Err: err}
}
