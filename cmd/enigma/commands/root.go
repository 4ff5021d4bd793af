package commands

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"enigma/internal/app"
	"enigma/internal/config"
)

var (
	home       string
	passphrase string
	configPath string
	verbose    bool

	appCtx *app.App
	logger *log.Logger
)

const helpText = `Three-rotor cipher machine simulator.

How to use:
  1. Select the rotor order, left to right (I, II, III).
  2. Set the starting positions, one letter A-Z per rotor.
  3. Define plugboard swaps like 'AB CD EF'.
  4. Enter a message. Letters are uppercased; everything else is dropped.
  5. Run encrypt to get the result.

Decryption is the same operation: the same setup is required to decrypt
the message.`

// Execute runs the enigma CLI. It should be called by the main package.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "enigma",
		Short:        "Three-rotor cipher machine",
		Long:         helpText,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			fc, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if home == "" {
				home = fc.HomeDir()
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".enigma")
			}

			logger = log.New(io.Discard, "", 0)
			if verbose {
				logger = log.New(cmd.ErrOrStderr(), "enigma: ", 0)
			}

			appCtx, err = app.New(app.Config{
				Home:     home,
				Defaults: fc.Settings(),
				Logger:   logger,
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "key-sheet directory (default ~/.enigma)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting key sheets")
	root.PersistentFlags().StringVar(&configPath, "config", "", "defaults file (default $XDG_CONFIG_HOME/enigma/config.yml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log machine state to stderr")

	root.AddCommand(encryptCmd(), rotorsCmd(), sheetCmd(), configCmd())
	return root
}
