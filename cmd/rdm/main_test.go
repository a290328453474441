package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/kbaseapps/refdatamgr/pkg/cli"
	"github.com/kbaseapps/refdatamgr/pkg/rdmtest"
)

// TestMain acts as the main entrypoint. Scripts run rdm in-process through
// the testscript command table.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"rdm": cli.Run,
	}))
}

func TestScripts(t *testing.T) {
	srv := rdmtest.New(t)

	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			env.Setenv("RDM_URL", srv.URL())
			env.Setenv("RDM_AUTH_URL", srv.LoginURL())
			env.Setenv("RDM_INSECURE", "true")
			env.Setenv("XDG_CONFIG_HOME", filepath.Join(env.WorkDir, ".config"))
			env.Setenv("TOKEN", rdmtest.DefaultToken)
			return nil
		},
	})
}
