package service

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("not_blank", func(fl validator.FieldLevel) bool {
			// Whitespace-only gratitude entries don't qualify
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}
