package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// requestValidator is built on first use. Fields are reported by JSON name.
var requestValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, fn := range map[string]validator.Func{
		"slot":   enumField(func(s string) bool { return domain.Slot(strings.ToLower(s)).IsValid() }),
		"rarity": enumField(func(s string) bool { return domain.Rarity(strings.ToUpper(s)).IsValid() }),
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
	return v
})

// enumField wraps a membership check. Empty strings pass so optional fields
// only need the tag; pair it with required otherwise.
func enumField(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || valid(s)
	}
}

func validateRequest(req any) error {
	return requestValidator().Struct(req)
}

// fieldMessages renders a failed tag for API clients
var fieldMessages = map[string]func(validator.FieldError) string{
	"required": func(validator.FieldError) string { return "This field is required" },
	"slot":     func(validator.FieldError) string { return "Invalid slot" },
	"rarity":   func(validator.FieldError) string { return "Invalid rarity" },
	"max":      func(e validator.FieldError) string { return "Must be at most " + e.Param() },
	"min":      func(e validator.FieldError) string { return "Must be at least " + e.Param() },
	"nefield":  func(validator.FieldError) string { return "Must differ from the paired field" },
}

// fieldErrors maps each invalid field to a message without exposing Go
// struct names. Non-validation errors collapse to a single "error" entry.
func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": ErrMsgInvalidRequest}
	}

	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		msg := "Invalid value"
		if render, ok := fieldMessages[e.Tag()]; ok {
			msg = render(e)
		}
		out[e.Field()] = msg
	}
	return out
}
