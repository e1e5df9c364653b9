package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"tagGallery/gallery"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var renameYes bool

var renameCmd = &cobra.Command{
	Use:   "rename-all",
	Short: "Rename every stored file to its SHA256",
	Long: `Asks the server to rename all stored files by their SHA256. This cannot
be undone, so the command asks for confirmation unless --yes is given.

Examples:
  tagGallery rename-all
  tagGallery rename-all --yes`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		confirm := func(string) bool { return true }
		if !renameYes {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				logrus.Fatal("Refusing to rename without confirmation: stdin is not a terminal (use --yes)")
			}
			confirm = promptConfirm(os.Stdin, os.Stdout)
		}

		ctrl := gallery.NewController(newClient(cfg), &cliView{out: os.Stdout}, noClipboard{}, gallery.Options{})
		ran, err := ctrl.RenameAll(cmd.Context(), confirm)
		if err != nil {
			os.Exit(1)
		}
		if !ran {
			logrus.Info("Nothing renamed")
			return
		}
		logrus.Infof("Renamed all files (%d records)", len(ctrl.Records()))
	},
}

// promptConfirm asks on out and accepts y or yes from in.
func promptConfirm(in io.Reader, out io.Writer) gallery.ConfirmFunc {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		answer, err := reader.ReadString('\n')
		if err != nil && answer == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		}
		return false
	}
}

func init() {
	rootCmd.AddCommand(renameCmd)
	renameCmd.Flags().BoolVarP(&renameYes, "yes", "y", false, "Skip the confirmation prompt")
}
