package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a receipt text file and print the reconciled result",
	Long: `Runs the same extraction and reconciliation as POST /transactions/receipt/parse
against a local text file. Nothing is written to the ledger; the raw model
output is still archived under DATA_DIR.

Example:
  sp_backend parse ./receipt.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	a, err := bootstrap()
	if err != nil {
		return err
	}

	receipt, err := a.services.Receipt.ParseReceipt(cmd.Context(), string(raw))
	if err != nil {
		return fmt.Errorf("failed to parse receipt: %w", err)
	}

	out, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode receipt: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
