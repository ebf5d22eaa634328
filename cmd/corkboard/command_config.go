package main

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"corkboard/internal/config"
)

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"
	configFormatYAML = "yaml"
)

func newConfigCommand(wiring commandWiring, opts *rootOptions) *cobra.Command {
	var format string
	var defaults bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := resolveConfigFormat(format)
			if err != nil {
				return err
			}
			settings := config.DefaultSettings()
			if !defaults {
				path, err := opts.resolveConfigPath()
				if err != nil {
					return err
				}
				settings, err = config.Load(path)
				if err != nil {
					return err
				}
			}
			settings.Theme = settings.ThemeOrDefault()
			return writeConfigOutput(cmd.OutOrStdout(), resolved, settings)
		},
	}
	cmd.Flags().StringVar(&format, "format", configFormatTOML, "output format: toml|json|yaml")
	cmd.Flags().BoolVar(&defaults, "default", false, "print default config values")
	return cmd
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatTOML:
		return configFormatTOML, nil
	case configFormatJSON:
		return configFormatJSON, nil
	case configFormatYAML, "yml":
		return configFormatYAML, nil
	default:
		return "", errors.New("invalid format: must be toml, json or yaml")
	}
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(payload); err != nil {
			return err
		}
		return encoder.Close()
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}
