package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash categories mirrored in page payloads.
var flashCategories = []string{"message", "success", "info", "warning"}

// Flash queues a one-shot notice under the given category. It is delivered
// with the next rendered page and then discarded.
func Flash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	_ = session.Save()
}

// Flashes drains all pending notices, grouped by category.
func Flashes(c *gin.Context) map[string][]string {
	session := sessions.Default(c)

	out := make(map[string][]string)
	for _, category := range flashCategories {
		for _, v := range session.Flashes(category) {
			if msg, ok := v.(string); ok {
				out[category] = append(out[category], msg)
			}
		}
	}
	_ = session.Save()
	return out
}
