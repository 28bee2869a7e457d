package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func registerControllerEndpoints(rest *echo.Echo, source SnapshotSource) {
	group := rest.Group("/controller")

	group.GET("/", func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, source.Snapshot(), indentationChar)
	})
}
