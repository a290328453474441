package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/kbaseapps/refdatamgr/pkg/auth"
	"github.com/kbaseapps/refdatamgr/pkg/cliconfig"
)

// LoginOutput is the JSON form of 'rdm login'.
type LoginOutput struct {
	User  string `json:"user"`
	Token string `json:"token"`
	Saved string `json:"saved,omitempty"`
}

var (
	loginUser          string
	loginPasswordStdin bool
	loginSave          bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange a KBase user name and password for a token",
	Long: `Log in at the KBase auth service and print the token. With --save the token
is written to the config file so later commands use it.

In a terminal, missing credentials are prompted for.

Examples:
  rdm login --user alice --save
  echo "$PASSWORD" | rdm login --user alice --password-stdin --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		user := loginUser
		if user == "" {
			user = cfg.User
		}

		var password string
		if loginPasswordStdin {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("reading password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}

		if user == "" || password == "" {
			if !stdinIsTerminal() {
				if user == "" {
					return auth.ErrMissingCredentials
				}
				return ErrNoPassword
			}
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("KBase user name").
						Value(&user).
						Validate(func(s string) error {
							if s == "" {
								return errors.New("user name is required")
							}
							return nil
						}),
					huh.NewInput().
						Title("Password").
						EchoMode(huh.EchoModePassword).
						Value(&password),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}
		}

		logger.Debug("logging in", "authUrl", cfg.AuthURL, "user", user)
		tok, err := auth.Login(cmd.Context(), cfg.AuthURL, user, password)
		if err != nil {
			return err
		}

		out := LoginOutput{User: tok.User, Token: tok.Value}
		if loginSave {
			path := cfg.ConfigFile
			if path == "" {
				if path, err = cliconfig.GlobalConfigPath(); err != nil {
					return err
				}
			}
			if err := cliconfig.SaveCredentials(path, tok.User, tok.Value); err != nil {
				return fmt.Errorf("saving credentials: %w", err)
			}
			out.Saved = path
		}

		return printResult(cmd, out, func(w io.Writer) {
			fmt.Fprintf(w, "Logged in as %s\n", out.User)
			if out.Saved != "" {
				fmt.Fprintf(w, "Token saved to %s\n", out.Saved)
				return
			}
			fmt.Fprintln(w, out.Token)
		})
	},
}

// stdinIsTerminal checks if stdin is a terminal.
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func init() {
	loginCmd.Flags().StringVarP(&loginUser, "user", "u", "", "KBase user name (default: configured user)")
	loginCmd.Flags().BoolVar(&loginPasswordStdin, "password-stdin", false, "Read the password from stdin")
	loginCmd.Flags().BoolVar(&loginSave, "save", false, "Save the token to the config file")
	rootCmd.AddCommand(loginCmd)
}
