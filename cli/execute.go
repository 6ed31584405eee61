package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/flowmesh/flowmesh-go/flowmesh"
	"github.com/flowmesh/flowmesh-go/pkg/logger"
)

// ExecuteCmd creates the flow execute command
func ExecuteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute <flow-id>",
		Short: "Execute a flow",
		Long:  "Execute a flow with optional input parameters.",
		Args:  cobra.ExactArgs(1),
		RunE:  runExecute,
	}

	cmd.Flags().StringSlice("input", []string{}, "Input parameters in key=value format (can be used multiple times)")
	cmd.Flags().String("input-file", "", "Path to JSON file containing input parameters")

	return cmd
}

func runExecute(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return err
	}
	client, err := flowmesh.New(clientCfg)
	if err != nil {
		return err
	}

	payload, err := parseInputParameters(cmd)
	if err != nil {
		return fmt.Errorf("failed to parse input parameters: %w", err)
	}

	ctx := cmd.Context()
	flowID := args[0]
	response, err := client.ExecuteFlow(ctx, flowID, payload)
	if err != nil {
		return err
	}

	// A flow-level error is still a normal result; print the envelope and
	// let the caller branch on the status field.
	if response.IsError() {
		logger.FromContext(ctx).Warn("flow reported an error",
			"flow_id", flowID, "message", response.Message, "status_code", response.StatusCode)
	}

	output, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

// parseInputParameters parses input parameters from flags
func parseInputParameters(cmd *cobra.Command) (map[string]any, error) {
	inputs := make(map[string]any)

	inputFlags, err := cmd.Flags().GetStringSlice("input")
	if err != nil {
		return nil, fmt.Errorf("failed to get input flags: %w", err)
	}

	for _, input := range inputFlags {
		parts := strings.SplitN(input, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid input format: %s (expected key=value)", input)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Try to parse value as JSON first, with explicit type checking
		if gjson.Valid(value) {
			result := gjson.Parse(value)
			switch result.Type {
			case gjson.String, gjson.Number, gjson.True, gjson.False:
				inputs[key] = result.Value()
			case gjson.JSON:
				// For complex JSON (objects/arrays), use the parsed value
				inputs[key] = result.Value()
			default:
				// For null or other types, treat as string
				inputs[key] = value
			}
		} else {
			// Otherwise treat as string
			inputs[key] = value
		}
	}

	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return nil, fmt.Errorf("failed to get input-file flag: %w", err)
	}

	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}

		var fileInputs map[string]any
		if err := json.Unmarshal(data, &fileInputs); err != nil {
			return nil, fmt.Errorf("failed to parse input file as JSON: %w", err)
		}

		// Merge file inputs with flag inputs (flag inputs take precedence)
		for k, v := range fileInputs {
			if _, exists := inputs[k]; !exists {
				inputs[k] = v
			}
		}
	}

	return inputs, nil
}
