package handler

import (
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/gin-gonic/gin"
)

// getPathParam retrieves a path parameter and validates it's not empty
func getPathParam(c *gin.Context, paramName string) (string, error) {
	value := c.Param(paramName)
	if value == "" {
		return "", fmt.Errorf("%s is required", paramName)
	}
	return value, nil
}

// parseQuery parses the raw query string strictly. gin's c.Query silently
// drops malformed pairs, which would turn a bad request into an unfiltered one.
func parseQuery(c *gin.Context) (url.Values, error) {
	values, err := url.ParseQuery(c.Request.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("invalid query string: %w", err)
	}
	return values, nil
}

// bindUpdates decodes a JSON object of column name to new value
func bindUpdates(c *gin.Context) (map[string]any, error) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("request body is required")
		}
		return nil, fmt.Errorf("invalid JSON format: %v", err)
	}
	if updates == nil {
		return nil, errors.New("request body must be a JSON object")
	}
	return updates, nil
}
