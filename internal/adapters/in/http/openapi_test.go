package http_test

import (
	"context"
	"testing"

	"fulfillment/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The embedded schema is the published contract; the generated handlers must
// keep serving every path it declares.
func TestEmbeddedOpenAPISchema(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	err = swagger.Validate(context.Background())
	require.NoError(t, err)

	for _, route := range []struct {
		path   string
		method string
	}{
		{"/api/v1/orders", "GET"},
		{"/api/v1/orders", "POST"},
		{"/api/v1/orders/{orderId}", "GET"},
		{"/api/v1/orders/{orderId}/status", "PATCH"},
		{"/api/v1/packaging/orders", "GET"},
	} {
		item := swagger.Paths.Find(route.path)
		require.NotNil(t, item, route.path)
		assert.NotNil(t, item.GetOperation(route.method), route.method+" "+route.path)
	}
}
