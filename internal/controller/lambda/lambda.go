package lambda

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Handler - запускает http.Handler внутри функции Netlify/AWS Lambda
type Handler struct {
	router http.Handler
	prefix string
}

// New - prefix срезается с пути запроса (/.netlify/functions/<name>/api/total -> /api/total)
func New(router http.Handler, prefix string) *Handler {
	return &Handler{
		router: router,
		prefix: strings.TrimSuffix(prefix, "/"),
	}
}

func (h *Handler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	req, err := h.newRequest(ctx, request)
	if err != nil {
		return &events.APIGatewayProxyResponse{
			StatusCode: http.StatusBadRequest,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error":"bad request"}`,
		}, nil
	}

	w := newResponseWriter()
	h.router.ServeHTTP(w, req)

	return w.response(), nil
}

func (h *Handler) newRequest(ctx context.Context, request events.APIGatewayProxyRequest) (*http.Request, error) {
	body := []byte(request.Body)
	if request.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(request.Body)
		if err != nil {
			return nil, fmt.Errorf("decode body: %w", err)
		}
		body = decoded
	}

	path := request.Path
	if h.prefix != "" {
		path = strings.TrimPrefix(path, h.prefix)
	}
	if path == "" {
		path = "/"
	}

	query := url.Values{}
	for key, values := range request.MultiValueQueryStringParameters {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	for key, v := range request.QueryStringParameters {
		if _, ok := query[key]; !ok {
			query.Set(key, v)
		}
	}

	target := &url.URL{Path: path, RawQuery: query.Encode()}

	method := request.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	for key, values := range request.MultiValueHeaders {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	for key, v := range request.Headers {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, v)
		}
	}

	req.RequestURI = target.RequestURI()
	req.RemoteAddr = request.RequestContext.Identity.SourceIP

	return req, nil
}

// responseWriter - буферизует ответ роутера целиком
type responseWriter struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func newResponseWriter() *responseWriter {
	return &responseWriter{header: http.Header{}}
}

func (w *responseWriter) Header() http.Header {
	return w.header
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	return w.body.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.status != 0 {
		return
	}

	w.status = statusCode
}

func (w *responseWriter) response() *events.APIGatewayProxyResponse {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}

	headers := make(map[string]string, len(w.header))
	for key, values := range w.header {
		if len(values) > 0 {
			headers[key] = strings.Join(values, ", ")
		}
	}

	return &events.APIGatewayProxyResponse{
		StatusCode:        status,
		Headers:           headers,
		MultiValueHeaders: w.header,
		Body:              w.body.String(),
	}
}
