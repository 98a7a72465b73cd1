package usecase

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/illumination-k/secretenv/pkg/env"
)

func sampleVariables() []*env.Variable {
	return []*env.Variable{
		{Name: "PORT", Value: "8080"},
		{Name: "DB_PASSWORD", Value: `"abc"`, SecretRef: &env.SecretRef{Name: "api-dev", Key: "password"}},
		{Name: "DB_USER", SecretRef: &env.SecretRef{Name: "api-dev", Key: "user"}},
	}
}

func TestBuildViews(t *testing.T) {
	views := BuildViews(sampleVariables(), false)
	require.Len(t, views, 3)

	assert.Equal(t, VariableView{Name: "PORT", Value: "8080", Source: "literal", Resolved: true}, views[0])
	assert.Equal(t, redactedValue, views[1].Value)
	assert.Equal(t, "secret", views[1].Source)
	assert.False(t, views[2].Resolved)
	assert.Empty(t, views[2].Value)

	revealed := BuildViews(sampleVariables(), true)
	assert.Equal(t, `"abc"`, revealed[1].Value)
}

func TestWriteVariablesTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVariablesTable(BuildViews(sampleVariables(), false), &buf))

	output := buf.String()
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "secret:api-dev/password")
	assert.Contains(t, output, redactedValue)
	assert.NotContains(t, output, "abc")
}

func TestWriteVariablesYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVariablesYAML(BuildViews(sampleVariables(), false), &buf))

	output := buf.String()
	assert.Contains(t, output, "name: PORT")
	assert.Contains(t, output, "secret: api-dev")
	assert.Contains(t, output, "resolved: false")
}

func TestWriteVariablesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVariablesJSON(BuildViews(sampleVariables(), true), &buf))

	var decoded []VariableView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, `"abc"`, decoded[1].Value)
}
