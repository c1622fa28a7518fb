package request

import (
	"sync"

	"meeting-room-reservation/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidations adds the "clock" and "isodate" binding tags to gin's validator.
func RegisterValidations() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err = v.RegisterValidation("clock", validateClock); err != nil {
			return
		}
		err = v.RegisterValidation("isodate", validateISODate)
	})
	return err
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := reservation.ParseClock(fl.Field().String())
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := reservation.ParseDate(fl.Field().String())
	return err == nil
}
