package http

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
)

// render writes v as JSON using sonic. Payloads that cannot be encoded
// (non-finite floats from a diverging solve) become a 500.
func render(c *gin.Context, status int, v interface{}) {
	data, err := sonic.Marshal(v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "failed to encode response: " + err.Error(),
		})
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}

// badRequest reports a malformed request. Numeric failures are never sent here.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": err.Error(),
	})
}
