package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().Bool("refseq", false, "")
	cmd.Flags().Bool("ensembl", false, "")
	cmd.Flags().Bool("phytozome", false, "")
	cmd.Flags().String("workspace", "", "")
	return cmd
}

func TestBit(t *testing.T) {
	cmd := newCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--refseq", "--ensembl=false"}))

	v, ok := Bit(cmd, "refseq")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	v, ok = Bit(cmd, "ensembl")
	assert.True(t, ok)
	assert.Equal(t, int64(0), v)

	_, ok = Bit(cmd, "phytozome")
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	cmd := newCmd()
	_, ok := String(cmd, "workspace")
	assert.False(t, ok)

	require.NoError(t, cmd.ParseFlags([]string{"--workspace", ""}))
	v, ok := String(cmd, "workspace")
	assert.True(t, ok)
	assert.Empty(t, v)
}
