package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the uniform error body used across all controllers.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}
