package cmd

import (
	"os"

	"tagGallery/gallery"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Add or delete a tag on one record",
	Long: `Changes the tags of the record with the given SHA256 and prints the
record as the server reports it afterwards.

Examples:
  tagGallery tag add 3f2a... sunset
  tagGallery tag delete 3f2a... "old tag"`,
}

var tagAddCmd = &cobra.Command{
	Use:   "add [sha256] [tag]",
	Short: "Add a tag",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runTagAction(cmd, gallery.ActionAdd, args[0], args[1])
	},
}

var tagDeleteCmd = &cobra.Command{
	Use:   "delete [sha256] [tag]",
	Short: "Delete a tag",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runTagAction(cmd, gallery.ActionDelete, args[0], args[1])
	},
}

func runTagAction(cmd *cobra.Command, action gallery.TagAction, sha, tag string) {
	cfg := loadConfig()
	ctrl := gallery.NewController(newClient(cfg), &cliView{out: os.Stdout}, noClipboard{}, gallery.Options{
		MediaBasePath: cfg.MediaBasePath,
	})

	var err error
	if action == gallery.ActionAdd {
		err = ctrl.AddTag(cmd.Context(), sha, tag)
	} else {
		err = ctrl.DeleteTag(cmd.Context(), sha, tag)
	}
	if err != nil {
		os.Exit(1)
	}
	if _, ok := ctrl.Record(sha); !ok {
		logrus.Warnf("No record with SHA256 %s", sha)
	}
}

func init() {
	tagCmd.AddCommand(tagAddCmd, tagDeleteCmd)
	rootCmd.AddCommand(tagCmd)
}
