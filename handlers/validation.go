// validation.go - Request validators built on gin binding tags

package handlers // Declares the package name

import ( // Import required packages
	"errors"  // Error inspection
	"reflect" // Struct tag lookup
	"strings" // String helpers
	"sync"    // Locking

	"go-campus-backend/apperr" // Error taxonomy

	"github.com/gin-gonic/gin"                                       // Gin web framework
	"github.com/gin-gonic/gin/binding"                               // Gin request binding
	"github.com/go-playground/validator/v10"                         // Field validation
	"github.com/go-playground/validator/v10/non-standard/validators" // notblank check
)

var validationOnce sync.Once

// registerValidation makes validator report json/form names instead of Go
// field names, so messages match what the client sent. It also adds the
// notblank check so whitespace-only text does not count as present.
func registerValidation() {
	validationOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return field.Name
		})
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
	})
}

func bindJSON(c *gin.Context, dst interface{}) error {
	return validationError(c.ShouldBindJSON(dst), "Invalid request body")
}

func bindQuery(c *gin.Context, dst interface{}) error {
	return validationError(c.ShouldBindQuery(dst), "Invalid query parameters")
}

// validationError turns a binding failure into a Validation error with one
// entry per failing field. Errors that are not field checks (malformed JSON,
// wrong types) become a single malformedMsg.
func validationError(err error, malformedMsg string) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Invalid(malformedMsg)
	}
	fields := make([]apperr.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, apperr.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return apperr.Invalid("Validation error", fields...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "email":
		return "Must be an email"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "url":
		return fe.Field() + " must be a valid URL"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return fe.Field() + " is invalid"
}
