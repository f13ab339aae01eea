package gateway

import (
	"bytes"
	"context"
	"fmt"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	diagnosticBodySnippetLimit = 512
	diagnosticRecordTimeout    = 2 * time.Second
)

var emptyObject = json.RawMessage(`{}`)

type gateway struct {
	BaseUrl  string
	client   *http.Client
	limiter  *rate.Limiter
	recorder contracts.DiagnosticsRecorder
	Log      *zap.Logger
}

type Option func(*gateway)

func WithHTTPClient(client *http.Client) Option {
	return func(g *gateway) {
		g.client = client
	}
}

// WithRateLimit caps outbound requests. A non-positive rps disables the limit.
func WithRateLimit(rps, burst int) Option {
	return func(g *gateway) {
		if rps <= 0 {
			g.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithDiagnostics(recorder contracts.DiagnosticsRecorder) Option {
	return func(g *gateway) {
		g.recorder = recorder
	}
}

func NewGateway(baseUrl string, timeout time.Duration, logger *zap.Logger, opts ...Option) contracts.Gateway {
	g := &gateway{
		BaseUrl: strings.TrimRight(baseUrl, "/"),
		client:  &http.Client{Timeout: timeout},
		Log:     logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *gateway) Request(ctx context.Context, method, path string, body interface{}, authToken string) (json.RawMessage, error) {
	var payload io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		payload = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.BaseUrl+path, payload)
	if err != nil {
		return nil, exceptions.ErrBuildRequest(err)
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	return g.do(ctx, req, authToken)
}

func (g *gateway) Upload(ctx context.Context, path string, fields map[string]string, file *contracts.UploadFile, authToken string) (json.RawMessage, error) {
	payload := new(bytes.Buffer)
	writer := multipart.NewWriter(payload)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		err := writer.WriteField(name, fields[name])
		if err != nil {
			return nil, exceptions.ErrBuildMultipart(err)
		}
	}

	if file != nil {
		contentType := file.ContentType
		if contentType == "" {
			contentType = constvars.MIMEOctetStream
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(file.FieldName), escapeQuotes(file.FileName)))
		header.Set(constvars.HeaderContentType, contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, exceptions.ErrBuildMultipart(err)
		}
		_, err = io.Copy(part, file.Content)
		if err != nil {
			return nil, exceptions.ErrBuildMultipart(err)
		}
	}

	err := writer.Close()
	if err != nil {
		return nil, exceptions.ErrBuildMultipart(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, g.BaseUrl+path, payload)
	if err != nil {
		return nil, exceptions.ErrBuildRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())

	return g.do(ctx, req, authToken)
}

func (g *gateway) do(ctx context.Context, req *http.Request, authToken string) (json.RawMessage, error) {
	requestID := utils.GetRequestID(ctx)
	if requestID == "" {
		requestID = utils.GenerateRequestID()
	}

	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)
	if authToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+authToken)
	}

	g.Log.Debug("gateway.Request called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, req.Method),
		zap.String(constvars.LoggingEndpointKey, req.URL.Path),
	)

	if g.limiter != nil {
		err := g.limiter.Wait(ctx)
		if err != nil {
			return nil, g.fail(ctx, req, requestID, 0, nil, exceptions.ErrRateLimiterWait(err))
		}
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, g.fail(ctx, req, requestID, 0, nil, exceptions.ErrSendHTTPRequest(err))
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, g.fail(ctx, req, requestID, resp.StatusCode, nil, exceptions.ErrReadHTTPResponse(err))
	}

	g.Log.Debug("gateway.Request responded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, req.URL.Path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(bodyBytes)),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, exceptions.ErrHTTPStatus(resp.StatusCode, errorMessageFrom(resp.StatusCode, bodyBytes))
	}

	trimmed := bytes.TrimSpace(bodyBytes)
	if resp.StatusCode == constvars.StatusNoContent || len(trimmed) == 0 {
		return emptyObject, nil
	}

	if !json.Valid(trimmed) {
		return nil, g.fail(ctx, req, requestID, resp.StatusCode, trimmed, exceptions.ErrMalformedResponse(fmt.Errorf("%d byte body is not JSON", len(trimmed))))
	}

	return json.RawMessage(trimmed), nil
}

// errorMessageFrom prefers the backend's own message and falls back to a
// generic one for bodies that are not JSON or carry no message.
func errorMessageFrom(statusCode int, body []byte) string {
	if gjson.ValidBytes(body) {
		message := gjson.GetBytes(body, "message").String()
		if strings.TrimSpace(message) != "" {
			return message
		}
	}
	return fmt.Sprintf(constvars.ErrClientRequestFailedWithStatus, statusCode)
}

func (g *gateway) fail(ctx context.Context, req *http.Request, requestID string, statusCode int, body []byte, customErr *exceptions.CustomError) error {
	g.Log.Warn("gateway.Request failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, req.Method),
		zap.String(constvars.LoggingEndpointKey, req.URL.Path),
		zap.String(constvars.LoggingErrorKindKey, string(customErr.Kind)),
		zap.Int(constvars.LoggingStatusCodeKey, statusCode),
		zap.Error(customErr),
	)

	if g.recorder == nil {
		return customErr
	}

	snippet := body
	if len(snippet) > diagnosticBodySnippetLimit {
		snippet = snippet[:diagnosticBodySnippetLimit]
	}

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), diagnosticRecordTimeout)
	defer cancel()

	err := g.recorder.Record(recordCtx, &models.GatewayDiagnostic{
		RequestID:   requestID,
		Method:      req.Method,
		Path:        req.URL.Path,
		Kind:        string(customErr.Kind),
		StatusCode:  statusCode,
		Message:     customErr.DevMessage,
		BodySnippet: string(snippet),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		g.Log.Error("gateway.Request error recording diagnostics",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return customErr
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
