package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"enigma/internal/crypto"
	"enigma/internal/domain"
)

func sheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Manage key sheets (named, passphrase-sealed machine settings)",
	}
	cmd.AddCommand(sheetSaveCmd(), sheetListCmd(), sheetShowCmd(), sheetDeleteCmd())
	return cmd
}

func sheetSaveCmd() *cobra.Command {
	var flags settingsFlags
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Store settings under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := requirePassphrase(cmd)
			if err != nil {
				return err
			}
			settings := flags.apply(cmd, appCtx.Defaults)
			sheet, err := appCtx.KeySheets.SaveKeySheet(pass, args[0], settings)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved key sheet %s.\nFingerprint: %s\n",
				sheet.Name, crypto.Fingerprint(sheet.Settings))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func sheetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored key sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := requirePassphrase(cmd)
			if err != nil {
				return err
			}
			sheets, err := appCtx.KeySheets.ListKeySheets(pass)
			if err != nil {
				return err
			}
			if len(sheets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No key sheets.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tROTORS\tPOSITIONS\tPLUGBOARD\tFINGERPRINT")
			for _, s := range sheets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					s.Name,
					strings.Join(s.Settings.Rotors, " "),
					s.Settings.Positions,
					strings.Join(s.Settings.Plugboard, " "),
					crypto.Fingerprint(s.Settings))
			}
			return w.Flush()
		},
	}
}

// sheetView is the YAML shape printed by `sheet show`.
type sheetView struct {
	Name        string          `yaml:"name"`
	Created     string          `yaml:"created"`
	Fingerprint string          `yaml:"fingerprint"`
	Settings    domain.Settings `yaml:"settings"`
}

func sheetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a key sheet as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := requirePassphrase(cmd)
			if err != nil {
				return err
			}
			sheet, err := appCtx.KeySheets.LoadKeySheet(pass, args[0])
			if err != nil {
				return err
			}
			b, err := yaml.Marshal(sheetView{
				Name:        sheet.Name,
				Created:     time.Unix(sheet.CreatedUTC, 0).UTC().Format(time.RFC3339),
				Fingerprint: crypto.Fingerprint(sheet.Settings),
				Settings:    sheet.Settings,
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

func sheetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a key sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := requirePassphrase(cmd)
			if err != nil {
				return err
			}
			if err := appCtx.KeySheets.DeleteKeySheet(pass, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted key sheet %s.\n", args[0])
			return nil
		},
	}
}
