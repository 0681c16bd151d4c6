// Package display centralizes output formatting for commands: the
// JSON/plain decision and JSON marshaling conventions.
package display

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ShouldOutputJSON reports whether a command should emit JSON, from the
// local --json flag if set, else the root persistent flag.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	if cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json")
	return globalFlag
}

// MarshalJSON pretty-prints for terminals and stays compact when stdout
// is not a terminal, so piped output is one object per line.
func MarshalJSON(v interface{}) ([]byte, error) {
	if stat, err := os.Stdout.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}

// OutputJSON marshals and prints v on stdout.
func OutputJSON(v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
