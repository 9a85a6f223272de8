// Jqlgen is an interactive terminal form that turns plain-English search
// intents into Jira JQL queries through the Groq chat completions API. A
// fixed system prompt encodes the JQL rules of the target Jira instance;
// replies are split into the query itself and an optional explanation. The
// refine action feeds a pasted Jira error message back to the model for a
// corrective rewrite.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"jqlgen/pkg/completion/groq"
	"jqlgen/pkg/config"
	"jqlgen/pkg/jql"
	"jqlgen/pkg/mcptool"
)

const version = "0.2.0"

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			initCmd := flag.NewFlagSet("init", flag.ExitOnError)
			initCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: jqlgen init [flags]\n\nCreate a jqlgen.yaml config file interactively.\n\nFlags:\n")
				initCmd.PrintDefaults()
			}
			out := initCmd.String("out", "jqlgen.yaml", "path to write the config file")
			_ = initCmd.Parse(os.Args[2:])

			if err := runInit(*out); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			return
		case "mcp":
			mcpCmd := flag.NewFlagSet("mcp", flag.ExitOnError)
			mcpCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: jqlgen mcp [flags]\n\nServe generate_jql and refine_jql as MCP tools on stdio.\n\nFlags:\n")
				mcpCmd.PrintDefaults()
			}
			configPath := mcpCmd.String("config", "", "path to configuration file (default: jqlgen.yaml if present)")
			envFile := mcpCmd.String("env", ".env", "path to .env file (ignored if missing)")
			_ = mcpCmd.Parse(os.Args[2:])

			if err := runMCP(*configPath, *envFile); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			return
		}
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jqlgen [flags]\n       jqlgen <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  init  Create a jqlgen.yaml config file interactively\n  mcp   Serve generate_jql and refine_jql as MCP tools on stdio\n")
	}

	configPath := flag.String("config", "", "path to configuration file (default: jqlgen.yaml if present)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	model := flag.String("model", "", "model identifier (overrides config)")
	baseURL := flag.String("base-url", "", "completions API base URL (overrides config)")
	flag.Parse()

	if err := run(*configPath, *envFile, *model, *baseURL); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadSetup resolves the configuration and builds the generator. The
// credential is validated here, before any network call is made.
func loadSetup(configPath, envFile, model, baseURL string) (*jql.Generator, config.Config, error) {
	if err := loadDotEnv(envFile); err != nil {
		return nil, config.Config{}, err
	}

	cfg, err := resolveConfig(configPath)
	if err != nil {
		return nil, config.Config{}, err
	}

	if model != "" {
		cfg.Model = model
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, config.Config{}, err
	}

	client := groq.New(cfg.APIKey, nil)
	client.BaseURL = cfg.BaseURL
	client.Name = cfg.Model
	client.MaxTokens = cfg.MaxTokens
	client.Temperature = cfg.Temperature

	return jql.NewGenerator(client), cfg, nil
}

// resolveConfig loads the explicit config path, falls back to jqlgen.yaml in
// the working directory, and finally to environment-only defaults.
func resolveConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat("jqlgen.yaml"); err == nil {
		return config.Load("jqlgen.yaml")
	}
	return config.FromEnv(), nil
}

func run(configPath, envFile, model, baseURL string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen, cfg, err := loadSetup(configPath, envFile, model, baseURL)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newAppModel(ctx, gen, cfg.Model), tea.WithAltScreen())

	_, err = p.Run()
	return err
}

func runMCP(configPath, envFile string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen, _, err := loadSetup(configPath, envFile, "", "")
	if err != nil {
		return err
	}

	srv := mcptool.New("jqlgen", version, gen)

	return srv.Serve(ctx, os.Stdin, os.Stdout)
}
