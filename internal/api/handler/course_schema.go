package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/coursehub/catalog-api/internal/core/ports"
)

// errorResponse documents the {"error": "..."} envelope for swagger.
type errorResponse struct {
	Error string `json:"error"`
}

// courseRequest keeps every field raw so that a wrongly typed value reaches
// the service as an invalid field instead of failing the bind. The service
// looks the course up before it validates.
type courseRequest struct {
	Name        json.RawMessage `json:"name" swaggertype:"string"`
	Description json.RawMessage `json:"description" swaggertype:"string"`
	Subject     json.RawMessage `json:"subject" swaggertype:"string"`
	Credits     json.RawMessage `json:"credits" swaggertype:"number"`
}

func (r courseRequest) toInput() ports.CourseInput {
	return ports.CourseInput{
		Name:        rawText(r.Name),
		Description: rawText(r.Description),
		Subject:     rawText(r.Subject),
		Credits:     rawCredits(r.Credits),
	}
}

// rawText reads a JSON string field. Non-zero numbers and true are taken by
// their literal text; zero, null, false, objects and arrays read as empty.
func rawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case 't':
		return "true"
	case 'n', 'f', '{', '[':
		return ""
	default:
		if f, err := strconv.ParseFloat(string(raw), 64); err == nil && f == 0 {
			return ""
		}
		return string(raw)
	}
}

// rawCredits converts the credits field to a number. An absent field is nil.
// null and empty strings become 0, numeric strings are parsed, and anything
// else becomes NaN so validation rejects it.
func rawCredits(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	var v float64
	switch raw[0] {
	case 'n':
		v = 0
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			v = math.NaN()
			break
		}
		v = parseNumeric(s)
	case 't', 'f', '{', '[':
		v = math.NaN()
	default:
		if err := json.Unmarshal(raw, &v); err != nil {
			v = math.NaN()
		}
	}
	return &v
}

func parseNumeric(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
