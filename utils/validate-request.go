package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidateRequest binds the JSON body into request and writes a 400 response
// with per-field messages when binding fails. Handlers just return on error.
func ValidateRequest(c *gin.Context, request any) error {
	err := c.ShouldBindJSON(request)
	if err == nil {
		return nil
	}

	fields := gin.H{}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			fields[strings.ToLower(fieldErr.Field())] = validationMessage(fieldErr)
		}
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "validation_error",
		"message": "Invalid request body.",
		"fields":  fields,
	})
	c.Abort()

	return err
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Must be a valid email address."
	case "min":
		return "Value is too short."
	case "max":
		return "Value is too long."
	default:
		return "Invalid value."
	}
}
