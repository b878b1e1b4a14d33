package downdetect

import (
	"context"
	"errors"
	"net/http"
	"testing"

	test_utils "logquery/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(context.Context) error {
	return p.err
}

func Test_IsAvailable_WhenLogServiceAnswers_ReturnsOK(t *testing.T) {
	router := createRouter(&stubPinger{})

	test_utils.MakeGetRequest(t, router, "/api/v1/downdetect/is-available", http.StatusOK)
}

func Test_IsAvailable_WhenLogServiceDown_ReturnsServiceUnavailable(t *testing.T) {
	router := createRouter(&stubPinger{err: errors.New("connection refused")})

	response := test_utils.MakeGetRequest(t, router, "/api/v1/downdetect/is-available", http.StatusServiceUnavailable)

	assert.Contains(t, string(response.Body), "log service check failed")
}

func createRouter(pinger LogServicePinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := &DowndetectController{NewDowndetectService(pinger)}
	controller.RegisterRoutes(router.Group("/api/v1"))

	return router
}
