package models

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("career", func(fl validator.FieldLevel) bool {
		return IsCareer(fl.Field().String())
	})
	return v
}

// ValidationError holds every message produced while validating a request body
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// trimmer is implemented by request bodies whose text fields are stored
// without surrounding whitespace
type trimmer interface {
	Trim()
}

// Validate checks a request body against its validate tags and returns a
// *ValidationError describing every failed field. Bodies passed by pointer are
// trimmed first, so blank names fail required.
func Validate(s interface{}) error {
	if t, ok := s.(trimmer); ok {
		t.Trim()
	}
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.Messages = append(ve.Messages, message(fe))
	}
	return ve
}

func message(fe validator.FieldError) string {
	field := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Please add %s %s", article(field), field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot be more than %s characters", capitalize(field), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", capitalize(field), fe.Param())
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", capitalize(field), fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("Please add at least %s %s", fe.Param(), field)
		}
		return fmt.Sprintf("%s must be at least %s", capitalize(field), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", capitalize(field), fe.Param())
	case "email":
		return "Please add a valid email"
	case "http_url":
		return "Please use a valid URL with HTTP or HTTPS"
	case "oneof":
		return fmt.Sprintf("%v is not a valid %s, expected one of: %s", fe.Value(), field, fe.Param())
	case "career":
		return fmt.Sprintf("%v is not a supported career", fe.Value())
	}
	return fmt.Sprintf("%s is invalid", capitalize(field))
}

// humanize turns a json field name like minimumSkill into "minimum skill".
// Slice elements arrive as careers[0] and are reported by their field.
func humanize(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func article(word string) string {
	if word != "" && strings.ContainsRune("aeiou", rune(word[0])) {
		return "an"
	}
	return "a"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
