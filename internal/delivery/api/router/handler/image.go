package handler

import (
	"io"
	"net/http"
	"strings"

	"qrstudio/internal/errors"

	"github.com/labstack/echo/v4"
)

// imageField is the multipart field carrying an uploaded picture
const imageField = "image"

// readImage returns the picture sent as a raw body or as the multipart
// "image" field. A request without a picture yields nil data and no error.
func readImage(c echo.Context) ([]byte, error) {
	req := c.Request()

	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fileHeader, err := c.FormFile(imageField)
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse multipart form")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return nil, errors.Wrap(err, "failed to open uploaded image")
		}
		defer file.Close()

		data, err := io.ReadAll(file)

		return data, errors.Wrap(err, "failed to read uploaded image")
	}

	data, err := io.ReadAll(req.Body)

	return data, errors.Wrap(err, "failed to read request body")
}
