package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"jqlgen/pkg/config"
)

// wizardAnswers holds the raw form values before conversion to a Config.
type wizardAnswers struct {
	APIKey    string // env var reference (e.g. "${GROQ_API_KEY}") or literal key
	Model     string
	BaseURL   string
	MaxTokens string
}

// runInit prompts for endpoint settings and writes a YAML config file.
func runInit(outPath string) error {
	defaults := config.Default()

	a := wizardAnswers{
		APIKey:    "${" + config.EnvAPIKey + "}",
		Model:     defaults.Model,
		BaseURL:   defaults.BaseURL,
		MaxTokens: strconv.Itoa(defaults.MaxTokens),
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("API key").
			Description("An env var reference like ${GROQ_API_KEY} keeps the secret out of the file.").
			Value(&a.APIKey),
		huh.NewInput().Title("Model").Value(&a.Model),
		huh.NewInput().Title("Base URL").Value(&a.BaseURL),
		huh.NewInput().Title("Max tokens").Value(&a.MaxTokens).Validate(validatePositiveInt),
	))

	if err := form.Run(); err != nil {
		return err
	}

	data, err := marshalWizardConfig(a)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", outPath)

	return nil
}

// marshalWizardConfig converts form answers to config YAML.
func marshalWizardConfig(a wizardAnswers) ([]byte, error) {
	maxTokens, err := strconv.Atoi(a.MaxTokens)
	if err != nil {
		return nil, fmt.Errorf("max tokens: %w", err)
	}

	cfg := config.Config{
		APIKey:    a.APIKey,
		Model:     a.Model,
		BaseURL:   a.BaseURL,
		MaxTokens: maxTokens,
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return data, nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive integer")
	}
	return nil
}
