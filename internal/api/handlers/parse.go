package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resumelens/internal/api/validation"
	"resumelens/internal/config"
	"resumelens/internal/decoder"
	"resumelens/internal/logging"
	"resumelens/internal/workers"
	"resumelens/pkg/models"
	"resumelens/pkg/utils"
)

var requestValidator = validator.New()

func init() {
	validation.RegisterProfileValidators(requestValidator)
}

// ParseResumeHandler handles the POST /api/v1/resume/parse endpoint
func ParseResumeHandler(cfg *config.Config, pool *workers.WorkerPool) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDOf(c)
		logger := logging.GetGlobalLogger()

		var req models.ParseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse(requestID, "invalid_request", "Invalid request body: "+err.Error()))
		}

		if err := requestValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse(requestID, "validation_failed", "Request validation failed: "+err.Error()))
		}

		logger.Info("Processing resume parse request", map[string]interface{}{
			"request_id":  requestID,
			"file_name":   req.FileName,
			"text_length": len(req.Text),
		})

		return submitParse(c, pool, requestID, req.Text, req.Options)
	}
}

// ParseResumeFileHandler handles the POST /api/v1/resume/parse/file endpoint.
// It accepts a multipart upload, decodes the document to plain text and runs
// the same extraction flow as the text endpoint.
func ParseResumeFileHandler(cfg *config.Config, pool *workers.WorkerPool) echo.HandlerFunc {
	dec := decoder.NewDecoder()

	return func(c echo.Context) error {
		requestID := requestIDOf(c)
		logger := logging.GetGlobalLogger()

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse(requestID, "invalid_request", "Missing file upload: "+err.Error()))
		}

		file, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse(requestID, "invalid_request", "Failed to open upload: "+err.Error()))
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorResponse(requestID, "read_failed", "Failed to read upload: "+err.Error()))
		}

		doc, err := dec.Decode(fileHeader.Filename, data)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, errorResponse(requestID, "decode_failed", err.Error()))
		}

		logger.Info("Processing resume file parse request", map[string]interface{}{
			"request_id": requestID,
			"file_name":  doc.FileName,
			"mime_type":  doc.MimeType,
			"file_size":  doc.FileSizeBytes,
		})

		return submitParse(c, pool, requestID, doc.Text, nil)
	}
}

// submitParse runs text through the worker pool and writes the parse response
func submitParse(c echo.Context, pool *workers.WorkerPool, requestID, text string, options *models.ParseOptions) error {
	result, err := pool.SubmitParse(c.Request().Context(), text, options)
	if err != nil {
		status := http.StatusInternalServerError
		code := "parse_failed"
		switch {
		case strings.Contains(err.Error(), "rate limit"):
			status = http.StatusTooManyRequests
			code = "rate_limited"
		case strings.Contains(err.Error(), "queue is full"):
			status = http.StatusServiceUnavailable
			code = "queue_full"
		}
		return c.JSON(status, errorResponse(requestID, code, err.Error()))
	}

	if result.Error != nil {
		if utils.IsInputError(result.Error) {
			return c.JSON(http.StatusUnprocessableEntity, errorResponse(requestID, "unprocessable_input", result.Error.Error()))
		}
		return c.JSON(http.StatusInternalServerError, errorResponse(requestID, "parse_failed", result.Error.Error()))
	}

	return c.JSON(http.StatusOK, models.ParseResponse{
		Success:        true,
		Profile:        result.Profile.ForDisplay(),
		Metadata:       result.Metadata,
		ProcessingTime: result.Duration,
		RequestID:      requestID,
	})
}

// requestIDOf returns the request ID set by middleware, generating one when
// the middleware did not run
func requestIDOf(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

func errorResponse(requestID, code, message string) models.ErrorResponse {
	return models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	}
}
