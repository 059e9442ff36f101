package main

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// errInvalidDocument signals a document that failed validation; the result is already printed
var errInvalidDocument = stderrors.New("document is invalid")

var rulesPath string

var validateCmd = &cobra.Command{
	Use:   "validate <file.json|->",
	Short: "Validate a character document",
	Long: `Validate a character document against the rule tables and print the result
as JSON. Reads standard input when the argument is "-". Exits with status 1 when
the document is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&rulesPath, "rules", "", "rule tables file (defaults to the embedded SRD tables)")
}

type validateResult struct {
	IsValid       bool                `json:"isValid"`
	Errors        []string            `json:"errors"`
	FieldErrors   []errors.FieldError `json:"fieldErrors"`
	SanitizedData *dnd5e.Character    `json:"sanitizedData,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := readDocument(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return err
	}

	var ruleset *rules.Ruleset
	if rulesPath != "" {
		ruleset, err = rules.LoadFile(rulesPath)
		if err != nil {
			return err
		}
	}

	e, err := engine.New(&engine.Config{Rules: ruleset})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out, err := e.ValidateCharacter(ctx, &engine.ValidateCharacterInput{Document: doc})
	if err != nil {
		return err
	}

	result := validateResult{
		IsValid:       out.IsValid,
		Errors:        out.Errors,
		FieldErrors:   out.FieldErrors,
		SanitizedData: out.SanitizedData,
	}
	if result.Errors == nil {
		result.Errors = []string{}
	}
	if result.FieldErrors == nil {
		result.FieldErrors = []errors.FieldError{}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return errors.Wrap(err, "failed to write result")
	}

	if !out.IsValid {
		return errInvalidDocument
	}
	return nil
}

func readDocument(stdin io.Reader, arg string) ([]byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read standard input")
		}
		return data, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", arg)
	}
	return data, nil
}

// decodeDocument parses a JSON object, keeping numbers as json.Number
func decodeDocument(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.InvalidArgumentf("document is not a JSON object: %v", err)
	}
	if doc == nil {
		return nil, errors.InvalidArgument("document is not a JSON object")
	}
	return doc, nil
}
