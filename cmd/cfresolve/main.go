// Package main provides the cfresolve CLI: it parses a CloudFormation
// template and resolves every intrinsic function call to its final value.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lex00/cfn-resolve-go/pkg/driver"
	"github.com/lex00/cfn-resolve-go/pkg/errors"
	"github.com/lex00/cfn-resolve-go/pkg/parser"
	"github.com/lex00/cfn-resolve-go/pkg/types"
	"github.com/lex00/cfn-resolve-go/pkg/value"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitResolveError = 1
	ExitInvalidArgs  = 2
)

// Options holds the CLI configuration.
type Options struct {
	TemplateFile   string
	OutputTemplate string
	Stdout         bool
	Verbose        bool
	Region         string
	Params         []string
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitInvalidArgs)
	}
}

// newRootCmd creates the root cobra command.
func newRootCmd() *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:     "cfresolve",
		Short:   "Resolve CloudFormation intrinsic functions in a template",
		Long:    `cfresolve reads a CloudFormation template and resolves every Ref, Fn::Sub, Fn::Join, Fn::If, and other intrinsic function call to its final value.`,
		Version: getVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.TemplateFile == "" {
				return fmt.Errorf("required flag \"template-file\" not set")
			}
			if opts.OutputTemplate == "" && !opts.Stdout {
				return fmt.Errorf("either --output-template or --stdout must be specified")
			}

			exitCode := runResolve(&opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if exitCode != ExitSuccess {
				os.Exit(exitCode)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&opts.TemplateFile, "template-file", "t", "", "Path to CloudFormation template file (required)")
	cmd.Flags().StringVarP(&opts.OutputTemplate, "output-template", "o", "", "Path to write the resolved template")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Write output to stdout")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().StringVar(&opts.Region, "region", "", "AWS region used to seed AWS::Region/AWS::Partition/AWS::URLSuffix (default: us-east-1)")
	cmd.Flags().StringArrayVar(&opts.Params, "param", nil, "Parameter override as NAME=VALUE (repeatable)")

	_ = cmd.MarkFlagRequired("template-file")

	return cmd
}

// runResolve performs the actual template resolution. It returns an exit
// code to facilitate testing.
func runResolve(opts *Options, stdout io.Writer, stderr io.Writer) int {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	if opts.Verbose {
		fmt.Fprintf(stderr, "Reading template from: %s\n", opts.TemplateFile)
	}

	input, err := os.ReadFile(opts.TemplateFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to read template file: %v\n", err)
		return ExitResolveError
	}

	tpl, err := parser.New().Parse(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to parse template: %v\n", err)
		return ExitResolveError
	}

	extraParams, err := buildExtraParams(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitResolveError
	}

	if opts.Verbose {
		fmt.Fprintf(stderr, "Resolving %d resource(s), %d output(s)\n", len(tpl.Resources), len(tpl.Outputs))
	}

	resolved, err := driver.Resolve(tpl, extraParams)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", formatError(err))
		return ExitResolveError
	}

	output, err := marshalResolved(resolved)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to marshal resolved template: %v\n", err)
		return ExitResolveError
	}

	if opts.Stdout {
		if _, err := stdout.Write(output); err != nil {
			fmt.Fprintf(stderr, "Error: failed to write to stdout: %v\n", err)
			return ExitResolveError
		}
		fmt.Fprintln(stdout)
	}

	if opts.OutputTemplate != "" {
		if opts.Verbose {
			fmt.Fprintf(stderr, "Writing output to: %s\n", opts.OutputTemplate)
		}
		if err := os.WriteFile(opts.OutputTemplate, output, 0644); err != nil {
			fmt.Fprintf(stderr, "Error: failed to write output file: %v\n", err)
			return ExitResolveError
		}
	}

	return ExitSuccess
}

// buildExtraParams turns --region and --param NAME=VALUE flags into the
// extraParams map the driver merges over template defaults.
func buildExtraParams(opts *Options) (map[string]interface{}, error) {
	extraParams := make(map[string]interface{})
	if opts.Region != "" {
		extraParams["AWS::Region"] = opts.Region
	}
	for _, p := range opts.Params {
		name, val, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --param %q: expected NAME=VALUE", p)
		}
		extraParams[name] = val
	}
	return extraParams, nil
}

// marshalResolved renders a ResolvedTemplate back to indented JSON.
func marshalResolved(resolved *types.ResolvedTemplate) ([]byte, error) {
	out := map[string]interface{}{}
	if resolved.AWSTemplateFormatVersion != "" {
		out["AWSTemplateFormatVersion"] = resolved.AWSTemplateFormatVersion
	}
	if resolved.Description != "" {
		out["Description"] = resolved.Description
	}
	conditions := make(map[string]bool, len(resolved.Conditions))
	for k, v := range resolved.Conditions {
		conditions[k] = v
	}
	if len(conditions) > 0 {
		out["Conditions"] = conditions
	}
	out["Resources"] = rawFromValueMap(resolved.Resources)
	if len(resolved.Outputs) > 0 {
		out["Outputs"] = rawFromValueMap(resolved.Outputs)
	}
	return json.MarshalIndent(out, "", "  ")
}

func rawFromValueMap(m map[string]value.Value) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v.Raw()
	}
	return out
}

// formatError formats a resolution error for user-friendly output.
func formatError(err error) string {
	if err == nil {
		return ""
	}
	if bi, ok := err.(*errors.BadIntrinsic); ok {
		return bi.Error()
	}
	return err.Error()
}
