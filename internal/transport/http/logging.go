package http

import (
	"encoding/json"
	"log"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	maxLoggedBody      = 2048
)

// registerLogging emits one JSON line per request through the standard log
// package (mirrored to Logstash when configured in main). Credentials and
// session tokens never reach the log: password-like fields are redacted and
// cookies are not logged at all.
func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			payload := struct {
				Time      string `json:"time"`
				Method    string `json:"method"`
				URI       string `json:"uri"`
				Status    int    `json:"status"`
				LatencyMS int64  `json:"latency_ms"`
				ReqBody   any    `json:"request_body,omitempty"`
				ResBody   any    `json:"response_body,omitempty"`
				Error     string `json:"error,omitempty"`
			}{
				Time:      v.StartTime.Format(time.RFC3339),
				Method:    v.Method,
				URI:       v.URI,
				Status:    v.Status,
				LatencyMS: v.Latency.Milliseconds(),
				ReqBody:   c.Get(requestBodyLogKey),
				ResBody:   c.Get(responseBodyLogKey),
			}
			if v.Error != nil {
				payload.Error = v.Error.Error()
			}

			buf, err := json.Marshal(payload)
			if err != nil {
				return err
			}
			log.Println(string(buf))
			return nil
		},
	}))

	e.Use(middleware.BodyDump(func(c echo.Context, reqBody, resBody []byte) {
		if summary := sanitizeBody(reqBody); summary != nil {
			c.Set(requestBodyLogKey, summary)
		}
		if summary := sanitizeBody(resBody); summary != nil {
			c.Set(responseBodyLogKey, summary)
		}
	}))
}

func sanitizeBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}

	if json.Valid(body) {
		var data any
		if err := json.Unmarshal(body, &data); err == nil {
			return redactJSON(data, "")
		}
	}

	if containsBinaryBytes(body) {
		return "binary"
	}

	text := string(body)
	if strings.Contains(strings.ToLower(text), "password") {
		return "redacted"
	}
	return clampString(text)
}

func redactJSON(value any, keyHint string) any {
	switch v := value.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, val := range v {
			lowerKey := strings.ToLower(key)
			if strings.Contains(lowerKey, "password") || strings.Contains(lowerKey, "token") {
				result[key] = "redacted"
				continue
			}
			result[key] = redactJSON(val, lowerKey)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = redactJSON(item, keyHint)
		}
		return result
	case string:
		if keyHint != "" && (strings.Contains(keyHint, "password") || strings.Contains(keyHint, "token")) {
			return "redacted"
		}
		return clampString(v)
	default:
		return v
	}
}

func containsBinaryBytes(data []byte) bool {
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return true
		}
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return true
		}
		data = data[size:]
	}
	return false
}

func clampString(value string) string {
	if len(value) <= maxLoggedBody {
		return value
	}
	truncated := value[:maxLoggedBody]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated + "...(truncated)"
}
