package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"tagGallery/gallery"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	listTag  string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the images and videos on the server",
	Long: `Fetches the image metadata from the server and prints it, optionally
keeping only records with a tag containing --tag (case-insensitive).

Examples:
  tagGallery list
  tagGallery list --tag cat --json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := newClient(cfg)

		records, err := client.FetchAll(cmd.Context())
		if err != nil {
			logrus.Fatalf("Failed to fetch images: %v", err)
		}
		records = gallery.FilterByTag(records, listTag)

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(records); err != nil {
				logrus.Fatal(err)
			}
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "NAME\tKIND\tSHA256\tTAGS\n")
		for _, r := range records {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Kind(), r.SHA256, strings.Join(r.TagList(), ", "))
		}
		tw.Flush()
		logrus.Debugf("Listed %d records", len(records))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listTag, "tag", "", "Only list records with a tag containing this text")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}
