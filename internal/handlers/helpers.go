package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// renderPage answers a GET page request with its context payload plus any
// pending flash notices. Templating is a client concern.
func renderPage(c *gin.Context, status int, context gin.H) {
	payload := gin.H{}
	for k, v := range context {
		payload[k] = v
	}
	payload["flashes"] = utils.Flashes(c)
	c.JSON(status, payload)
}

// formErrors flattens a binding failure into per-field messages.
func formErrors(err error) map[string]string {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["form"] = "invalid form submission"
		return fields
	}

	for _, fe := range verrs {
		field := snakeCase(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[field] = "This field is required."
		case "email":
			fields[field] = "Invalid email address."
		case "eqfield":
			fields[field] = "Field must be equal to " + snakeCase(fe.Param()) + "."
		case "min":
			fields[field] = "Field must be at least " + fe.Param() + " characters long."
		case "max":
			fields[field] = "Field cannot be longer than " + fe.Param() + " characters."
		default:
			fields[field] = "Invalid value."
		}
	}
	return fields
}

// snakeCase turns a struct field name into its form field name.
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// safeNextPath accepts a post-login target only when it is a local path, so
// the next parameter cannot be turned into an open redirect.
func safeNextPath(next string) (string, bool) {
	if next == "" {
		return "", false
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "", false
	}
	return next, true
}

// parseIDParam reads a numeric id path parameter.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
