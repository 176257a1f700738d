package handlers

import (
	"fmt"

	"resourcecal/services/availability"
	"resourcecal/timespan"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var customValidations = map[string]validator.Func{
	"timespan": func(fl validator.FieldLevel) bool {
		_, err := timespan.Parse(fl.Field().String())
		return err == nil
	},
	"datetimespan": func(fl validator.FieldLevel) bool {
		_, err := timespan.ParseDateTimeSpan(fl.Field().String())
		return err == nil
	},
	"publishdate": func(fl validator.FieldLevel) bool {
		_, err := availability.ParsePublishDate(fl.Field().String())
		return err == nil
	},
	"blockadetype": func(fl validator.FieldLevel) bool {
		_, err := availability.ParseBlockadeType(fl.Field().String())
		return err == nil
	},
	"weekday": func(fl validator.FieldLevel) bool {
		_, err := availability.ParseDayName(fl.Field().String())
		return err == nil
	},
}

// RegisterValidators adds the scheduling binding tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	for tag, fn := range customValidations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}
