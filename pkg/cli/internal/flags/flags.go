// Package flags reads optional cobra flags as service parameter values.
package flags

import "github.com/spf13/cobra"

// Bit returns a boolean flag as the 0/1 integer the service expects, and
// whether the flag was given at all.
func Bit(cmd *cobra.Command, name string) (int64, bool) {
	if !cmd.Flags().Changed(name) {
		return 0, false
	}
	on, err := cmd.Flags().GetBool(name)
	if err != nil || !on {
		return 0, true
	}
	return 1, true
}

// String returns a string flag's value and whether it was given.
func String(cmd *cobra.Command, name string) (string, bool) {
	if !cmd.Flags().Changed(name) {
		return "", false
	}
	v, err := cmd.Flags().GetString(name)
	return v, err == nil
}
