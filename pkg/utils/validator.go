package utils

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// maxSafeInteger is the largest integer a JSON number can carry without loss.
const maxSafeInteger = 1<<53 - 1

type FieldKind int

const (
	KindString FieldKind = iota
	KindInteger
	KindNumber
	KindStringArray
)

func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindStringArray:
		return "array"
	default:
		return "unknown"
	}
}

// ValidationMode selects whether required fields must be present.
type ValidationMode int

const (
	ModeFull ValidationMode = iota
	ModePartial
)

// FieldRule describes the constraints of one input field.
//
// Tag is a go-playground validator tag checked against the decoded value
// (float64 for numeric kinds, string for strings). ElemTag is checked against
// each element of a string array. Default is only applied in ModeFull.
type FieldRule struct {
	Name     string
	Kind     FieldKind
	Required bool
	Tag      string
	ElemTag  string
	Default  any

	RequiredMessage string
	TypeMessage     string
	// Messages overrides the message for a failed validator tag, keyed by tag name.
	Messages map[string]string
}

// FieldError is one problem found in the input.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidateFields checks input against rules and returns the normalized fields.
// Keys not described by rules are dropped. Problems are reported in rule order.
func ValidateFields(input any, rules []FieldRule, mode ValidationMode) (map[string]any, []FieldError) {
	obj, ok := input.(map[string]any)
	if !ok {
		return nil, []FieldError{{
			Field:   "",
			Code:    "invalid_type",
			Message: fmt.Sprintf("Expected object, received %s", jsonTypeName(input)),
		}}
	}

	out := make(map[string]any, len(rules))
	var errs []FieldError

	for _, rule := range rules {
		raw, present := obj[rule.Name]
		if !present {
			if mode != ModeFull {
				continue
			}
			if rule.Default != nil {
				out[rule.Name] = rule.Default
				continue
			}
			if rule.Required {
				errs = append(errs, FieldError{
					Field:   rule.Name,
					Code:    "required",
					Message: orDefault(rule.RequiredMessage, "Required"),
				})
			}
			continue
		}

		value, fieldErrs := checkField(rule, raw)
		if len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs...)
			continue
		}
		out[rule.Name] = value
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func checkField(rule FieldRule, raw any) (any, []FieldError) {
	typeErr := func() []FieldError {
		msg := rule.TypeMessage
		if msg == "" {
			msg = fmt.Sprintf("Expected %s, received %s", rule.Kind, jsonTypeName(raw))
		}
		return []FieldError{{Field: rule.Name, Code: "invalid_type", Message: msg}}
	}

	switch rule.Kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, typeErr()
		}
		if fe := checkTag(rule.Name, s, rule.Tag, rule.Messages); fe != nil {
			return nil, []FieldError{*fe}
		}
		return s, nil

	case KindInteger:
		f, ok := raw.(float64)
		if !ok {
			return nil, typeErr()
		}
		if f != math.Trunc(f) {
			return nil, []FieldError{{Field: rule.Name, Code: "invalid_type", Message: "Expected integer, received float"}}
		}
		if math.Abs(f) > maxSafeInteger {
			return nil, []FieldError{{Field: rule.Name, Code: "too_big", Message: "Number must be a safe integer"}}
		}
		if fe := checkTag(rule.Name, f, rule.Tag, rule.Messages); fe != nil {
			return nil, []FieldError{*fe}
		}
		return int(f), nil

	case KindNumber:
		f, ok := raw.(float64)
		if !ok {
			return nil, typeErr()
		}
		if fe := checkTag(rule.Name, f, rule.Tag, rule.Messages); fe != nil {
			return nil, []FieldError{*fe}
		}
		return f, nil

	case KindStringArray:
		items, ok := raw.([]any)
		if !ok {
			return nil, typeErr()
		}
		values := make([]string, 0, len(items))
		var errs []FieldError
		for i, item := range items {
			name := fmt.Sprintf("%s[%d]", rule.Name, i)
			s, ok := item.(string)
			if !ok {
				errs = append(errs, FieldError{
					Field:   name,
					Code:    "invalid_type",
					Message: fmt.Sprintf("Expected string, received %s", jsonTypeName(item)),
				})
				continue
			}
			if fe := checkTag(name, s, rule.ElemTag, rule.Messages); fe != nil {
				errs = append(errs, *fe)
				continue
			}
			values = append(values, s)
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return values, nil
	}

	return nil, []FieldError{{Field: rule.Name, Code: "invalid_type", Message: fmt.Sprintf("Invalid %s field", rule.Name)}}
}

// checkTag runs a validator tag against a single value.
func checkTag(field string, value any, tag string, messages map[string]string) *FieldError {
	if tag == "" {
		return nil
	}

	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return &FieldError{Field: field, Code: "invalid", Message: err.Error()}
	}

	fe := validationErrors[0]
	msg, ok := messages[fe.Tag()]
	if !ok {
		msg = getErrorMessage(field, fe)
	}
	return &FieldError{Field: field, Code: fe.Tag(), Message: msg}
}

// converts validator errors to human-readable messages
func getErrorMessage(field string, err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "Required"
	case "min":
		return fmt.Sprintf("String must contain at least %s character(s)", err.Param())
	case "max":
		return fmt.Sprintf("String must contain at most %s character(s)", err.Param())
	case "gt":
		return fmt.Sprintf("Number must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("Number must be greater than or equal to %s", err.Param())
	case "lt":
		return fmt.Sprintf("Number must be less than %s", err.Param())
	case "lte":
		return fmt.Sprintf("Number must be less than or equal to %s", err.Param())
	case "url":
		return "Invalid url"
	case "oneof":
		options := strings.Fields(err.Param())
		return fmt.Sprintf("Invalid enum value. Expected '%s', received '%v'",
			strings.Join(options, "' | '"), err.Value())
	default:
		return fmt.Sprintf("Invalid %s field", field)
	}
}

// FormatValidationErrors joins problems into a single line.
func FormatValidationErrors(errs []FieldError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Field == "" {
			msgs = append(msgs, e.Message)
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(msgs, "; ")
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
