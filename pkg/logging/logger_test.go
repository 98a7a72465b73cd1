package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var quiet bytes.Buffer
	logger := New(&quiet, false)
	logger.Debug().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, quiet.String(), "hidden")
	assert.Contains(t, quiet.String(), "shown")

	var verbose bytes.Buffer
	logger = New(&verbose, true)
	logger.Debug().Str("secret", "db").Msg("fetching secret")

	assert.Contains(t, verbose.String(), "fetching secret")
	assert.Contains(t, verbose.String(), "secret=db")
}
