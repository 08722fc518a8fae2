package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "GET", "/health", nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestUnknownRouteReturns404(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "GET", "/api/nope", nil)
	assert.Equal(t, 404, w.Code)
}
