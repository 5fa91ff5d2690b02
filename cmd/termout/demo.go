package termout

import (
	"context"
	"fmt"
	"time"

	"github.com/arthur-debert/termout/pkg/output"
	"github.com/arthur-debert/termout/pkg/status"
	"github.com/arthur-debert/termout/pkg/terminal"
)

type demoPackage struct {
	name    string
	version string
	size    string
}

var demoPackages = []demoPackage{
	{name: "ripgrep", version: "14.1.0", size: "2.1 MB"},
	{name: "fd", version: "10.1.0", size: "1.0 MB"},
	{name: "bat", version: "0.24.0", size: "5.3 MB"},
}

func runDemo(ctx context.Context, term *terminal.Terminal, delay time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := term.DisplayHeader("termout"); err != nil {
		return err
	}

	if err := term.DisplayMiniHeader("Levels"); err != nil {
		return err
	}
	levels := []func(string, ...output.Option) error{
		term.DisplayError,
		term.DisplayWarning,
		term.DisplayInfo,
		term.DisplaySuccess,
		term.DisplayWaiting,
	}
	names := []string{"error", "warning", "info", "success", "waiting"}
	for i, display := range levels {
		if err := display(fmt.Sprintf("Sample %s message", names[i]), output.WithIndent("  ")); err != nil {
			return err
		}
	}
	for level := 1; level <= 3; level++ {
		if err := term.DisplayDebug(fmt.Sprintf("Debug detail at level %d", level), level, output.WithIndent("  ")); err != nil {
			return err
		}
	}

	if err := term.DisplayMarkup("  Markup mixes [success]level styles[/success] and [bold underline]descriptors[/] on one line"); err != nil {
		return err
	}

	if err := term.DisplayMiniHeader("Statuses"); err != nil {
		return err
	}
	outer := term.StatusWith("Downloading packages", status.WithFinal(fmt.Sprintf("Downloaded %d packages", len(demoPackages))))
	err := status.Run(outer, func() error {
		for _, pkg := range demoPackages {
			err := status.Run(term.StatusWith("Fetching "+pkg.name), func() error {
				return pause(ctx, delay)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	err = status.Run(term.StatusIf(delay > 0, "Cleaning up"), func() error {
		return pause(ctx, delay)
	})
	if err != nil {
		return err
	}

	name := output.Column{Title: "Package", Cells: map[int]string{}}
	version := output.Column{Title: "Version", Cells: map[int]string{}}
	size := output.Column{Title: "Size", Cells: map[int]string{}}
	for i, pkg := range demoPackages {
		name.Cells[i] = pkg.name
		version.Cells[i] = pkg.version
		size.Cells[i] = pkg.size
	}
	err = term.DisplayTable(output.Table{
		Title:   "Packages",
		Columns: []output.Column{name, version, size},
	})
	if err != nil {
		return err
	}

	return term.DisplayMarkdown(MsgDemoNotes)
}

// pause waits for d or until ctx is done
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
