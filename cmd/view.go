package cmd

import (
	"fmt"
	"io"
	"strings"

	"tagGallery/gallery"

	"github.com/sirupsen/logrus"
)

// cliView prints what the controller shows. Grid redraws are not printed;
// commands list records themselves.
type cliView struct {
	out io.Writer
}

func (v *cliView) RenderGrid(grid []gallery.Placeholder) {
	logrus.WithField("cells", len(grid)).Debug("Grid redrawn")
}

func (v *cliView) RenderDetail(detail gallery.Detail) {
	tags := make([]string, len(detail.Tags))
	for i, chip := range detail.Tags {
		tags[i] = chip.Text
	}
	fmt.Fprintf(v.out, "%s\t%s\t%s\n", detail.Caption, detail.Kind, strings.Join(tags, ", "))
}

func (v *cliView) ClearTagInput() {}

func (v *cliView) Notify(err error) {
	logrus.Error(gallery.UserMessage(err))
}

func (v *cliView) ShowToast(toast gallery.Toast) {
	fmt.Fprintln(v.out, toast.Message)
}

// noClipboard backs the controller in commands that never copy.
type noClipboard struct{}

func (noClipboard) WriteAll(string) error {
	return fmt.Errorf("clipboard is not available from the command line")
}
