package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired  = "is required"
	ErrMinValue  = "must be at least %s"
	ErrMaxValue  = "must be at most %s"
	ErrLen       = "must be exactly %s characters long"
	ErrNumeric   = "must contain only digits"
	ErrUnique    = "must not contain duplicates"
	ErrNotBlank  = "must not be blank"
	ErrShowDate  = "must be a valid date in YYYY-MM-DD format"
	ErrTimeSlot  = "must be a valid time slot such as 6:30 PM"
	ErrCardExp   = "must be in MM/YY format"
	ErrFallback  = "is invalid"
	dateLayout   = "2006-01-02"
	expiryLayout = "01/06"
)

var timeSlotRgx = regexp.MustCompile(`^(1[0-2]|[1-9]):[0-5][0-9] (AM|PM)$`)

func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterValidation("notblank", validateNotBlank)
	validate.RegisterValidation("showdate", validateShowDate)
	validate.RegisterValidation("timeslot", validateTimeSlot)
	validate.RegisterValidation("cardexpiry", validateCardExpiry)

	return validate
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateShowDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(dateLayout, fl.Field().String())
	return err == nil
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	return timeSlotRgx.MatchString(fl.Field().String())
}

func validateCardExpiry(fl validator.FieldLevel) bool {
	_, err := time.Parse(expiryLayout, fl.Field().String())
	return err == nil
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "len":
		return fmt.Sprintf(ErrLen, err.Param())
	case "numeric":
		return ErrNumeric
	case "unique":
		return ErrUnique
	case "notblank":
		return ErrNotBlank
	case "showdate":
		return ErrShowDate
	case "timeslot":
		return ErrTimeSlot
	case "cardexpiry":
		return ErrCardExp
	default:
		return ErrFallback
	}
}
