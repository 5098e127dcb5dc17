package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chrisgreen1993/expo-native-codegen/internal/codegen"
	"github.com/chrisgreen1993/expo-native-codegen/internal/source"
)

// Valid generation targets.
var ValidTargets = []string{"all", "swift", "kotlin"}

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Config    string // config file path
	Target    string // "all" | "swift" | "kotlin"
	SwiftOut  string // output path for Swift source
	KotlinOut string // output path for Kotlin source
	Package   string // Kotlin package name
}

// GenerateResult holds the rendered sources for JSON output.
type GenerateResult struct {
	DeclarationCount int    `json:"declaration_count"`
	Swift            string `json:"swift,omitempty"`
	Kotlin           string `json:"kotlin,omitempty"`
	SwiftFile        string `json:"swift_file,omitempty"`
	KotlinFile       string `json:"kotlin_file,omitempty"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <decls-dir>",
		Short: "Generate Swift and Kotlin sources from type declarations",
		Long: `Generate native Expo Modules data classes from the type declarations
in a directory of CUE files.

Each target renders the full declaration set into one source file:
Record structs/classes for interfaces and object aliases, Enumerable
enums for enums and literal-union aliases.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "config file path (codegen.yaml)")
	cmd.Flags().StringVar(&opts.Target, "target", "all", "generation target (all|swift|kotlin)")
	cmd.Flags().StringVar(&opts.SwiftOut, "swift-out", "", "output path for the Swift source file")
	cmd.Flags().StringVar(&opts.KotlinOut, "kotlin-out", "", "output path for the Kotlin source file")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Kotlin package name")

	return cmd
}

func runGenerate(opts *GenerateOptions, declsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	if !isValidTarget(opts.Target) {
		return outputGenerateError(formatter, ErrCodeGeneric,
			fmt.Sprintf("invalid target %q: must be one of %v", opts.Target, ValidTargets))
	}

	// Merge config file under flag values
	if opts.Config != "" {
		cfg, err := LoadConfig(opts.Config)
		if err != nil {
			return outputGenerateError(formatter, ErrCodeNotFound, err.Error())
		}
		if opts.SwiftOut == "" {
			opts.SwiftOut = cfg.Swift.Output
		}
		if opts.KotlinOut == "" {
			opts.KotlinOut = cfg.Kotlin.Output
		}
		if opts.Package == "" {
			opts.Package = cfg.Kotlin.Package
		}
	}

	loadResult, err := LoadDeclarations(declsDir)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			return outputGenerateError(formatter, loadErr.Code, loadErr.Message)
		}
		return outputGenerateError(formatter, ErrCodeGeneric, err.Error())
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", loadResult.FileCount, declsDir)
	for _, decl := range loadResult.Declarations {
		formatter.VerboseLog("Loaded %s %s", decl.Kind, decl.Name)
	}

	result := &GenerateResult{DeclarationCount: len(loadResult.Declarations)}

	if opts.Target == "all" || opts.Target == "swift" {
		swift, err := codegen.Swift(loadResult.Declarations)
		if err != nil {
			return outputGenerationFailure(formatter, err)
		}
		result.Swift = swift
	}
	if opts.Target == "all" || opts.Target == "kotlin" {
		kotlin, err := codegen.Kotlin(loadResult.Declarations, codegen.KotlinConfig{Package: opts.Package})
		if err != nil {
			return outputGenerationFailure(formatter, err)
		}
		result.Kotlin = kotlin
	}

	if result.Swift != "" && opts.SwiftOut != "" {
		if err := writeSourceFile(opts.SwiftOut, result.Swift); err != nil {
			return outputGenerateError(formatter, ErrCodeWriteFailed, err.Error())
		}
		result.SwiftFile = opts.SwiftOut
	}
	if result.Kotlin != "" && opts.KotlinOut != "" {
		if err := writeSourceFile(opts.KotlinOut, result.Kotlin); err != nil {
			return outputGenerateError(formatter, ErrCodeWriteFailed, err.Error())
		}
		result.KotlinFile = opts.KotlinOut
	}

	return outputGenerateSuccess(formatter, result, loadResult.Declarations)
}

func isValidTarget(target string) bool {
	for _, t := range ValidTargets {
		if t == target {
			return true
		}
	}
	return false
}

// writeSourceFile writes rendered source text, creating parent
// directories as needed.
func writeSourceFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// codedError is implemented by the generator's typed errors.
type codedError interface {
	error
	Code() string
}

// outputGenerationFailure surfaces a typed generation error verbatim
// and exits with ExitFailure.
func outputGenerationFailure(formatter *OutputFormatter, err error) error {
	code := ErrCodeGeneric
	var coded codedError
	if errors.As(err, &coded) {
		code = coded.Code()
	}
	formatter.Error(code, err.Error())
	return NewExitError(ExitFailure, err.Error())
}

// outputGenerateError reports a command-level error (bad paths,
// unreadable config) and exits with ExitCommandError.
func outputGenerateError(formatter *OutputFormatter, code, message string) error {
	formatter.Error(code, message)
	return NewExitError(ExitCommandError, message)
}

// outputGenerateSuccess outputs the generation summary.
func outputGenerateSuccess(formatter *OutputFormatter, result *GenerateResult, decls []source.Declaration) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Generated %d declaration(s)\n\n", result.DeclarationCount)
	for _, decl := range decls {
		fmt.Fprintf(formatter.Writer, "  %s %s\n", decl.Kind, decl.Name)
	}
	if result.SwiftFile != "" {
		fmt.Fprintf(formatter.Writer, "\nWrote Swift source to %s\n", result.SwiftFile)
	} else if result.Swift != "" {
		fmt.Fprintf(formatter.Writer, "\n--- Swift ---\n%s", result.Swift)
	}
	if result.KotlinFile != "" {
		fmt.Fprintf(formatter.Writer, "Wrote Kotlin source to %s\n", result.KotlinFile)
	} else if result.Kotlin != "" {
		fmt.Fprintf(formatter.Writer, "\n--- Kotlin ---\n%s", result.Kotlin)
	}
	return nil
}
