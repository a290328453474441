package cli

import (
	"errors"
	"fmt"

	"github.com/kbaseapps/refdatamgr/pkg/jsonrpc"
)

// Common CLI errors
var (
	ErrNoInput    = errors.New("nothing to send - pass --params, a record file, or --data")
	ErrNoPassword    = errors.New("no password given - use --password-stdin or run in a terminal")
)

// describeError adds a hint to errors the user can act on.
func describeError(err error) string {
	if jsonrpc.IsUnauthorized(err) {
		return fmt.Sprintf("%v\n  hint: run 'rdm login' or set RDM_TOKEN", err)
	}
	return err.Error()
}
