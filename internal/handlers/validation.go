package handlers

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/SscSPs/news_aggregator_app/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 8

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules and reports fields by
// their JSON (or query) name. It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		err = v.RegisterValidation("strongpassword", strongPassword)
	})
	return err
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// strongPassword requires at least one upper case letter, one lower case
// letter and one digit in a value of minPasswordLength or more characters.
// bcrypt limits the value to utils.MaxPasswordBytes bytes, not characters.
func strongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len([]rune(password)) < minPasswordLength || len(password) > utils.MaxPasswordBytes {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
