package utils

import "github.com/gin-gonic/gin"

// Envelope is the response shape every handler emits. Clients rely on it
// being identical across endpoints: success is always present, data only on
// success, error only on failure.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, Envelope{
		Success: true,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, Envelope{
		Success: false,
		Error:   err.Error(),
	})
}
