package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/qdm12/reprint"
)

func registerConfigEndpoints(rest *echo.Echo) {
	group := rest.Group("/config")

	group.GET("/", getConfig)
}

func getConfig(c echo.Context) error {
	data, ok := reprint.This(configuration.CurrentConfig).(configuration.Configuration)
	if !ok {
		return returnError(c, errors.New("unable to copy configuration"))
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}
