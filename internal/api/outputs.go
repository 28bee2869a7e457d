package api

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/outputs"
	"github.com/qdm12/reprint"
)

type OutputResult struct {
	ID     string                     `json:"id"`
	Config configuration.OutputConfig `json:"config"`
	Duty   *uint8                     `json:"duty,omitempty"`
	Error  string                     `json:"error,omitempty"`
}

func registerOutputEndpoints(rest *echo.Echo) {
	group := rest.Group("/output")

	group.GET("/", getOutputs)
	group.GET("/:"+urlParamId+"/", getOutput)
}

func newOutputResult(output outputs.Output) OutputResult {
	result := OutputResult{
		ID:     output.GetId(),
		Config: reprint.This(output.GetConfig()).(configuration.OutputConfig),
	}
	value, err := output.GetDuty()
	if err != nil {
		result.Error = err.Error()
	} else {
		result.Duty = &value
	}
	return result
}

func getOutputs(c echo.Context) error {
	var data []OutputResult
	for _, output := range outputs.OutputMap.Items() {
		data = append(data, newOutputResult(output))
	}
	sort.Slice(data, func(i, j int) bool {
		return data[i].ID < data[j].ID
	})
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getOutput(c echo.Context) error {
	id := c.Param(urlParamId)

	output, exists := outputs.OutputMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, newOutputResult(output), indentationChar)
}
