package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrisgreen1993/expo-native-codegen/internal/codegen"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid            bool   `json:"valid"`
	DeclarationCount int    `json:"declaration_count"`
	ErrorCode        string `json:"error_code,omitempty"`
	ErrorMessage     string `json:"error_message,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <decls-dir>",
		Short: "Validate type declarations without generating output",
		Long: `Resolve and order the declarations in a directory of CUE files
without rendering any target source.

Catches unsupported types, bad alias shapes, duplicate names, and
reference cycles. Faster than generate for development feedback.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, declsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	loadResult, err := LoadDeclarations(declsDir)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			formatter.Error(loadErr.Code, loadErr.Message)
			return NewExitError(ExitCommandError, loadErr.Message)
		}
		formatter.Error(ErrCodeGeneric, err.Error())
		return NewExitError(ExitCommandError, err.Error())
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", loadResult.FileCount, declsDir)

	if _, err := codegen.Resolve(loadResult.Declarations); err != nil {
		code := ErrCodeGeneric
		var coded codedError
		if errors.As(err, &coded) {
			code = coded.Code()
		}
		if formatter.Format == "json" {
			formatter.Success(ValidationResult{
				Valid:            false,
				DeclarationCount: len(loadResult.Declarations),
				ErrorCode:        code,
				ErrorMessage:     err.Error(),
			})
		} else {
			fmt.Fprintf(formatter.Writer, "✗ Validation failed\n  %s\n", err.Error())
		}
		return NewExitError(ExitFailure, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{
			Valid:            true,
			DeclarationCount: len(loadResult.Declarations),
		})
	}
	fmt.Fprintf(formatter.Writer, "✓ %d declaration(s) valid\n", len(loadResult.Declarations))
	return nil
}
