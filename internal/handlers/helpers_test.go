// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"med_adherence_keep/internal/middleware"
	"med_adherence_keep/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// httpResponseExpectations はHTTPレスポンスの検証に必要な期待値をまとめます。
type httpResponseExpectations struct {
	ExpectedCode     int
	ExpectedErrorMsg string
}

// newTestServer は認証ミドルウェア込みのテスト用サーバを立てます。
// ルート登録は routes コールバックで行います。
func newTestServer(t *testing.T, routes func(r chi.Router)) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	r.Use(middleware.LoggingMiddleware(logger))
	r.Group(func(r chi.Router) {
		// テストでは X-Tenant-ID ヘッダをそのまま信用する
		r.Use(middleware.DevTenantContextMiddleware)
		routes(r)
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

// sendRequest はHTTPリクエストを送信し、基本的なレスポンス情報を返します。
// ステータスコードのアサーションもここで行います。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectations httpResponseExpectations) (int, []byte) {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if details.Body != nil && reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	client := server.Client()
	resp, err := client.Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	assert.Equal(t, expectations.ExpectedCode, resp.StatusCode, "Status code mismatch")

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	if expectations.ExpectedErrorMsg != "" {
		verifyErrorResponse(t, respBodyBytes, expectations.ExpectedErrorMsg)
	}

	return resp.StatusCode, respBodyBytes
}

// verifyErrorResponse はエラーレスポンスのボディを検証します。
func verifyErrorResponse(t *testing.T, bodyBytes []byte, expectedErrorMsgPart string) {
	t.Helper()

	var errResp model.APIErrorResponse
	err := json.Unmarshal(bodyBytes, &errResp)
	if err == nil {
		assert.True(t, strings.Contains(errResp.Error.Message, expectedErrorMsgPart),
			"Expected error msg part '%s' in JSON msg '%s'", expectedErrorMsgPart, errResp.Error.Message)
	} else {
		assert.True(t, strings.Contains(string(bodyBytes), expectedErrorMsgPart),
			"Expected error msg part '%s' in raw body '%s'", expectedErrorMsgPart, string(bodyBytes))
	}
}
