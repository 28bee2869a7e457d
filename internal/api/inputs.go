package api

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/inputs"
	"github.com/qdm12/reprint"
)

type InputResult struct {
	ID     string                    `json:"id"`
	Config configuration.InputConfig `json:"config"`
	Value  *uint8                    `json:"value,omitempty"`
	Error  string                    `json:"error,omitempty"`
}

func registerInputEndpoints(rest *echo.Echo) {
	group := rest.Group("/input")

	group.GET("/", getInputs)
	group.GET("/:"+urlParamId+"/", getInput)
}

func newInputResult(input inputs.Input) InputResult {
	result := InputResult{
		ID:     input.GetId(),
		Config: reprint.This(input.GetConfig()).(configuration.InputConfig),
	}
	value, err := input.Read()
	if err != nil {
		result.Error = err.Error()
	} else {
		result.Value = &value
	}
	return result
}

func getInputs(c echo.Context) error {
	var data []InputResult
	for _, input := range inputs.InputMap.Items() {
		data = append(data, newInputResult(input))
	}
	sort.Slice(data, func(i, j int) bool {
		return data[i].ID < data[j].ID
	})
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getInput(c echo.Context) error {
	id := c.Param(urlParamId)

	input, exists := inputs.InputMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, newInputResult(input), indentationChar)
}
