package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/sentivox/domain"
	"github.com/satriahrh/sentivox/domain/entities"
)

const (
	serviceName = "sentivox"

	audioFormField = "audio"

	msgNoAudio           = "No audio file uploaded"
	msgEmptyAudio        = "Empty audio content"
	msgNoText            = "No text provided"
	msgFileNotFound      = "File not found"
	msgResultNotFound    = "Result not found"
	msgInvalidLimit      = "Invalid limit"
	msgTranscriptionFail = "An error occurred during transcription"
	msgSynthesisFail     = "An error occurred during speech synthesis"
	msgTranscriptionTime = "The speech recognition service timed out"
	msgSynthesisTime     = "The speech synthesis service timed out"
	msgInternal          = "Internal server error"
)

// Transcriber turns uploaded audio into a stored transcription
type Transcriber interface {
	Transcribe(ctx context.Context, audioData []byte) (*entities.TranscriptionResult, error)
}

// Synthesizer turns text into stored audio
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*entities.SynthesisResult, error)
}

// OutputProvider serves stored files and result metadata
type OutputProvider interface {
	OpenFile(ctx context.Context, name string) (io.ReadCloser, string, error)
	ListResults(ctx context.Context, limit int) ([]entities.ResultRecord, error)
	GetResult(ctx context.Context, id string) (*entities.ResultRecord, error)
}

// Handler holds the dependencies of the HTTP endpoints
type Handler struct {
	transcriber Transcriber
	synthesizer Synthesizer
	outputs     OutputProvider
	logger      *zap.Logger
}

// NewHandler creates the HTTP handlers
func NewHandler(transcriber Transcriber, synthesizer Synthesizer, outputs OutputProvider, logger *zap.Logger) *Handler {
	return &Handler{
		transcriber: transcriber,
		synthesizer: synthesizer,
		outputs:     outputs,
		logger:      logger,
	}
}

func (h *Handler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": serviceName,
	})
}

func (h *Handler) index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", indexPage{
		Title:         "Speech & Sentiment",
		UploadURL:     "/upload",
		SynthesizeURL: "/synthesize",
	})
}

func (h *Handler) upload(c echo.Context) error {
	fileHeader, err := c.FormFile(audioFormField)
	if err != nil {
		h.logger.Error("No audio file uploaded", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoAudio})
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded audio", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoAudio})
	}
	defer file.Close()

	audioData, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded audio", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoAudio})
	}

	if len(audioData) == 0 {
		h.logger.Error("Empty audio content")
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgEmptyAudio})
	}

	result, err := h.transcriber.Transcribe(c.Request().Context(), audioData)
	if err != nil {
		h.logger.Error("Error in speech recognition", zap.Error(err))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgEmptyAudio})
		case errors.Is(err, domain.ErrTimeout):
			return c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: msgTranscriptionTime, Message: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: fmt.Sprintf("%s: %s", msgTranscriptionFail, err.Error()),
			})
		}
	}

	return c.JSON(http.StatusOK, TranscriptionResponse{
		Transcript:     result.Transcript,
		Sentiment:      result.Sentiment.String(),
		SentimentScore: result.Sentiment.ScorePtr(),
		FileURL:        entities.OutputURL(result.FileName),
	})
}

func (h *Handler) synthesize(c echo.Context) error {
	var req SynthesisRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("Failed to bind synthesis request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoText})
	}

	if req.Text == "" {
		h.logger.Error("No text provided for synthesis")
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoText})
	}

	result, err := h.synthesizer.Synthesize(c.Request().Context(), req.Text)
	if err != nil {
		h.logger.Error("Error in speech synthesis", zap.Error(err))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoText})
		case errors.Is(err, domain.ErrTimeout):
			return c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: msgSynthesisTime, Message: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgSynthesisFail, Message: err.Error()})
		}
	}

	return c.JSON(http.StatusOK, SynthesisResponse{
		AudioURL:       entities.OutputURL(result.AudioFile),
		TextURL:        entities.OutputURL(result.TextFile),
		Sentiment:      result.Sentiment.String(),
		SentimentScore: result.Sentiment.ScorePtr(),
	})
}

func (h *Handler) serveOutput(c echo.Context) error {
	name := c.Param("filename")

	reader, ext, err := h.outputs.OpenFile(c.Request().Context(), name)
	if err != nil {
		h.logger.Error("Error serving file", zap.String("filename", name), zap.Error(err))
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: msgFileNotFound})
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Stream(http.StatusOK, contentTypeFor(ext), reader)
}

func (h *Handler) listResults(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidLimit, Message: "limit must be a positive integer"})
		}
		limit = parsed
	}

	records, err := h.outputs.ListResults(c.Request().Context(), limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidLimit, Message: err.Error()})
		}
		h.logger.Error("Failed to list results", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
	}

	response := ResultListResponse{Results: make([]ResultResponse, 0, len(records))}
	for i := range records {
		response.Results = append(response.Results, toResultResponse(&records[i]))
	}
	response.Count = len(response.Results)

	return c.JSON(http.StatusOK, response)
}

func (h *Handler) getResult(c echo.Context) error {
	record, err := h.outputs.GetResult(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: msgResultNotFound})
		}
		h.logger.Error("Failed to get result", zap.String("id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
	}

	return c.JSON(http.StatusOK, toResultResponse(record))
}

func toResultResponse(record *entities.ResultRecord) ResultResponse {
	urls := make([]string, 0, len(record.Files))
	for _, name := range record.Files {
		urls = append(urls, entities.OutputURL(name))
	}

	return ResultResponse{
		ID:             record.ID,
		Kind:           string(record.Kind),
		Text:           record.Text,
		Sentiment:      record.Sentiment,
		SentimentScore: record.Score,
		FileURLs:       urls,
		CreatedAt:      record.CreatedAt,
	}
}

func contentTypeFor(ext string) string {
	switch ext {
	case entities.ExtAudio:
		return "audio/mpeg"
	case entities.ExtText:
		return echo.MIMETextPlainCharsetUTF8
	default:
		return echo.MIMEOctetStream
	}
}
