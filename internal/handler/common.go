package handler // handler defines http handlers

import (
	"errors"  // errors provides sentinel values used in getUserID
	"io"      // io reads uploaded file contents into memory
	"strconv" // strconv converts strings to numeric types

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/helenus/hotel-api/internal/service" // service holds the orchestration layer
)

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) { // begin getUserID helper
	v := c.Get("user_id") // fetch user_id from context
	switch t := v.(type) { // perform type switch on the value
	case uint64: // when already uint64
		return t, nil // return directly
	case int: // when stored as int
		return uint64(t), nil // convert to uint64
	case int64: // when stored as int64
		return uint64(t), nil // convert to uint64
	case float64: // when stored as float64 (JWT claims decode numbers this way)
		return uint64(t), nil // convert to uint64
	case string: // when stored as string
		if n, err := strconv.ParseUint(t, 10, 64); err == nil { // parse string to uint64
			return n, nil // return parsed number
		}
	} // end type switch
	return 0, errors.New("invalid user_id in context") // return error if value is missing or invalid
}

// pathID parses the named path parameter as an unsigned integer id.
func pathID(c echo.Context, name string) (uint64, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// readUploads drains the multipart file headers under the given form field
// into memory, preserving upload order.  Returns nil when the field is
// absent, which callers treat as "no new images supplied".
func readUploads(c echo.Context, field string) ([]service.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	files := form.File[field]
	out := make([]service.ImageUpload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, service.ImageUpload{
			Data:        data,
			ContentType: fh.Header.Get("Content-Type"),
		})
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
