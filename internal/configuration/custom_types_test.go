package configuration

import (
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
)

func TestParseDutyValue(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected DutyValue
	}{
		{name: "int", input: 62, expected: 62},
		{name: "int64", input: int64(255), expected: 255},
		{name: "float without fraction", input: 128.0, expected: 128},
		{name: "numeric string", input: "62", expected: 62},
		{name: "hex string", input: "0x3E", expected: 62},
		{name: "percentage", input: "25%", expected: 64},
		{name: "percentage with space", input: " 100 % ", expected: 255},
		{name: "zero percent", input: "0%", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// WHEN
			result, err := ParseDutyValue(tt.input)

			// THEN
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseDutyValue_Invalid(t *testing.T) {
	inputs := []interface{}{
		-1,
		256,
		12.5,
		"101%",
		"-5%",
		"abc",
		true,
	}

	for _, input := range inputs {
		// WHEN
		_, err := ParseDutyValue(input)

		// THEN
		assert.Error(t, err, "input: %v", input)
	}
}

func TestDutyValueHookFunc(t *testing.T) {
	// GIVEN
	type testConfig struct {
		PwmMin         DutyValue
		WarmupDuty     DutyValue
		WarmupDuration time.Duration
		Other          int
	}
	input := map[string]interface{}{
		"pwmMin":         "25%",
		"warmupDuty":     200,
		"warmupDuration": "250ms",
		"other":          300,
	}

	var result testConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: decodeHooks(),
		Result:     &result,
	})
	assert.NoError(t, err)

	// WHEN
	err = decoder.Decode(input)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, DutyValue(64), result.PwmMin)
	assert.Equal(t, DutyValue(200), result.WarmupDuty)
	assert.Equal(t, 250*time.Millisecond, result.WarmupDuration)
	assert.Equal(t, 300, result.Other)
}

func TestDutyValueHookFunc_OutOfRange(t *testing.T) {
	// GIVEN
	type testConfig struct {
		PwmMin DutyValue
	}
	input := map[string]interface{}{
		"pwmMin": 300,
	}

	var result testConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: decodeHooks(),
		Result:     &result,
	})
	assert.NoError(t, err)

	// WHEN
	err = decoder.Decode(input)

	// THEN
	assert.Error(t, err)
}
