package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_JSONHandlerCarriesService(t *testing.T) {
	var buf bytes.Buffer

	logger, err := build(&buf, config.Log{Level: "debug"}, "storefront")
	require.NoError(t, err)

	logger.Debug("probe finished")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "probe finished", line["msg"])
	assert.Equal(t, "storefront", line["service"])
}

func TestBuild_LevelFilters(t *testing.T) {
	var buf bytes.Buffer

	logger, err := build(&buf, config.Log{Level: "warn", Pretty: true}, "")
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLogLevel_Unknown(t *testing.T) {
	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}
