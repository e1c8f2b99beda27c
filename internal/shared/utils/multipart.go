package utils

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

// ReadFormFile pulls one file out of a multipart form and returns its
// bytes. Image payloads are small (the gateway enforces a 5MB cap) so
// buffering in memory is fine.
func ReadFormFile(c *gin.Context, field string) ([]byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing form file %q: %w", field, err)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open form file %q: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read form file %q: %w", field, err)
	}

	return data, nil
}
