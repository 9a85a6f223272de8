package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"jqlgen/pkg/config"
)

func TestMarshalWizardConfig(t *testing.T) {
	data, err := marshalWizardConfig(wizardAnswers{
		APIKey:    "${GROQ_API_KEY}",
		Model:     "mixtral-8x7b-32768",
		BaseURL:   "https://api.groq.com/openai/v1",
		MaxTokens: "1024",
	})
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, "${GROQ_API_KEY}", cfg.APIKey)
	assert.Equal(t, "mixtral-8x7b-32768", cfg.Model)
	assert.Equal(t, 1024, cfg.MaxTokens)
}

func TestMarshalWizardConfig_BadMaxTokens(t *testing.T) {
	_, err := marshalWizardConfig(wizardAnswers{MaxTokens: "lots"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max tokens")
}

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, validatePositiveInt("1024"))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validatePositiveInt("-5"))
	assert.Error(t, validatePositiveInt("many"))
}
