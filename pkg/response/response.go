package response

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime"
	"strings"

	"frostwatch-srv/pkg/discord"
	"frostwatch-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, ErrorResp) {
	switch parsedErr := err.(type) {
	case *errors.ValidationError:
		return http.StatusBadRequest, ErrorResp{
			Error: parsedErr.Error(),
		}
	case *errors.ValidationErrorCollector:
		return http.StatusBadRequest, ErrorResp{
			Error:  ValidationErrorMsg,
			Errors: parsedErr.Errors(),
		}
	case *errors.HTTPError:
		statusCode := parsedErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, ErrorResp{
			Error: parsedErr.Message,
		}
	default:
		if d != nil {
			stackTrace := captureStackTrace()
			sendDiscordMessageAsync(c, d, buildInternalServerErrorReport(c, err.Error(), stackTrace))
		}
		return http.StatusInternalServerError, ErrorResp{
			Error: DefaultErrorMessage,
		}
	}
}

// Error sends error response (status + JSON from parseError).
func Error(c *gin.Context, err error, d discord.IDiscord) {
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

// HttpError sends response for *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err, c, nil)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks up err in eMap and sends the corresponding HTTPError, else Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping) {
	if httpErr, ok := eMap[err]; ok {
		Error(c, httpErr, nil)
		return
	}
	Error(c, err, nil)
}

// PanicError handles panic recovery and sends an error response.
func PanicError(c *gin.Context, err any, d discord.IDiscord) {
	if errVal, ok := err.(error); ok {
		statusCode, resp := parseError(errVal, c, d)
		c.JSON(statusCode, resp)
		return
	}
	statusCode, resp := parseError(fmt.Errorf("%v", err), c, d)
	c.JSON(statusCode, resp)
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return nil
	}
	var stackTrace []string
	for _, pc := range pcs[:n] {
		f := runtime.FuncForPC(pc)
		if f != nil {
			file, line := f.FileLine(pc)
			stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", file, line, f.Name()))
		}
	}
	return stackTrace
}

func sendDiscordMessageAsync(c *gin.Context, d discord.IDiscord, message string) {
	if d == nil {
		return
	}
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > discordChunkLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > discordChunkLen {
				chunks = append(chunks, line[:discordChunkLen])
				line = line[discordChunkLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

func buildInternalServerErrorReport(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("=============== FROSTWATCH SERVICE ERROR ===============\n")
	sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.String()))
	sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
	if bodyBytes, err := io.ReadAll(c.Request.Body); err == nil {
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		if len(bodyBytes) > 0 {
			sb.WriteString(fmt.Sprintf("Body    : %s\n", string(bodyBytes)))
		}
	}
	sb.WriteString("--------------------------------------------------------\n")
	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))
	if len(backtrace) > 0 {
		sb.WriteString("Stack   :\n")
		for _, frame := range backtrace {
			sb.WriteString("    " + frame + "\n")
		}
	}
	return sb.String()
}
