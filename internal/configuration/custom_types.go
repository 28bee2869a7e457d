package configuration

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DutyValue is a duty cycle in the configuration, given either as a raw
// value (0..255) or as a percentage of the full range ("25%").
type DutyValue uint8

// DutyValueHookFunc returns a mapstructure decode hook function for DutyValue.
func DutyValueHookFunc() mapstructure.DecodeHookFuncType {
	dutyValueType := reflect.TypeOf(DutyValue(0))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != dutyValueType {
			return data, nil
		}
		return ParseDutyValue(data)
	}
}

// ParseDutyValue converts numeric and percentage values to a DutyValue.
func ParseDutyValue(data interface{}) (DutyValue, error) {
	switch v := data.(type) {
	case DutyValue:
		return v, nil
	case int:
		return dutyFromInt(int64(v))
	case int64:
		return dutyFromInt(v)
	case uint8:
		return DutyValue(v), nil
	case uint64:
		if v > math.MaxUint8 {
			return 0, fmt.Errorf("duty value %d out of range [0..255]", v)
		}
		return DutyValue(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("duty value %v must be an integer or a percentage", v)
		}
		return dutyFromInt(int64(v))
	case string:
		text := strings.TrimSpace(v)
		if strings.HasSuffix(text, "%") {
			percentage, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(text, "%")), 64)
			if err != nil {
				return 0, fmt.Errorf("cannot parse %q as percentage: %w", v, err)
			}
			if percentage < 0 || percentage > 100 {
				return 0, fmt.Errorf("duty percentage %q out of range [0%%..100%%]", v)
			}
			return DutyValue(math.Round(percentage * 255 / 100)), nil
		}
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as duty value: %w", v, err)
		}
		return dutyFromInt(n)
	default:
		return 0, fmt.Errorf("cannot convert %T to duty value", data)
	}
}

func dutyFromInt(v int64) (DutyValue, error) {
	if v < 0 || v > math.MaxUint8 {
		return 0, fmt.Errorf("duty value %d out of range [0..255]", v)
	}
	return DutyValue(v), nil
}
