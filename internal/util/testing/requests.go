package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestResponse struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

func MakeGetRequest(t *testing.T, router *gin.Engine, url string, expectedStatus int) *TestResponse {
	return MakeRequest(t, router, http.MethodGet, url, nil, expectedStatus)
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	expectedStatus int,
	responseStruct any,
) *TestResponse {
	response := MakeGetRequest(t, router, url, expectedStatus)
	unmarshal(t, response, responseStruct)
	return response
}

func MakePostRequest(t *testing.T, router *gin.Engine, url string, body any, expectedStatus int) *TestResponse {
	return MakeRequest(t, router, http.MethodPost, url, body, expectedStatus)
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	body any,
	expectedStatus int,
	responseStruct any,
) *TestResponse {
	response := MakePostRequest(t, router, url, body, expectedStatus)
	unmarshal(t, response, responseStruct)
	return response
}

func MakePutRequest(t *testing.T, router *gin.Engine, url string, body any, expectedStatus int) *TestResponse {
	return MakeRequest(t, router, http.MethodPut, url, body, expectedStatus)
}

func MakePutRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	body any,
	expectedStatus int,
	responseStruct any,
) *TestResponse {
	response := MakePutRequest(t, router, url, body, expectedStatus)
	unmarshal(t, response, responseStruct)
	return response
}

func MakeDeleteRequest(t *testing.T, router *gin.Engine, url string, expectedStatus int) *TestResponse {
	return MakeRequest(t, router, http.MethodDelete, url, nil, expectedStatus)
}

func MakeRequest(
	t *testing.T,
	router *gin.Engine,
	method string,
	url string,
	body any,
	expectedStatus int,
) *TestResponse {
	t.Helper()

	var requestBody *bytes.Buffer
	switch typedBody := body.(type) {
	case nil:
		requestBody = bytes.NewBuffer(nil)
	case []byte:
		requestBody = bytes.NewBuffer(typedBody)
	case string:
		requestBody = bytes.NewBufferString(typedBody)
	default:
		encoded, err := json.Marshal(body)
		require.NoError(t, err, "Failed to marshal request body")
		requestBody = bytes.NewBuffer(encoded)
	}

	request, err := http.NewRequest(method, url, requestBody)
	require.NoError(t, err, "Failed to create HTTP request")

	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, expectedStatus, recorder.Code,
		"Unexpected status code for %s %s, body: %s", method, url, recorder.Body.String())

	return &TestResponse{
		StatusCode: recorder.Code,
		Body:       recorder.Body.Bytes(),
		Headers:    recorder.Header(),
	}
}

func unmarshal(t *testing.T, response *TestResponse, responseStruct any) {
	t.Helper()

	if responseStruct == nil {
		return
	}

	err := json.Unmarshal(response.Body, responseStruct)
	require.NoError(t, err, "Failed to unmarshal response body: %s", string(response.Body))
}
