package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mrlokans/audaroky/internal/config"
	"github.com/mrlokans/audaroky/internal/entrypoint"
	"github.com/mrlokans/audaroky/internal/logging"
	"github.com/mrlokans/audaroky/internal/services"
)

// DashboardSource is the part of the reader the progress command needs.
type DashboardSource interface {
	Dashboard() (services.Dashboard, error)
}

type ProgressCommand struct {
	JSON bool

	out io.Writer
}

func NewProgressCommand() *ProgressCommand {
	return &ProgressCommand{out: os.Stdout}
}

func (cmd *ProgressCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("progress", flag.ContinueOnError)

	fs.BoolVar(&cmd.JSON, "json", false, "Print the dashboard as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s progress [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show XP, stats, unlocked levels, book progress and achievements.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ProgressCommand) Run() error {
	app, err := entrypoint.Build(config.NewConfig(), "cli", logging.New("production"))
	if err != nil {
		return err
	}
	defer app.Close()

	return cmd.print(app.Reader)
}

func (cmd *ProgressCommand) print(src DashboardSource) error {
	d, err := src.Dashboard()
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	if cmd.JSON {
		enc := json.NewEncoder(cmd.out)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	fmt.Fprintf(cmd.out, "XP:                   %d\n", d.XP)
	fmt.Fprintf(cmd.out, "Streak:               %d days\n", d.Stats.StreakDays)
	fmt.Fprintf(cmd.out, "Words translated:     %d\n", d.Stats.WordsTranslated)
	fmt.Fprintf(cmd.out, "Sentences translated: %d\n", d.Stats.SentencesTranslated)
	fmt.Fprintf(cmd.out, "Books completed:      %d\n", d.Stats.BooksCompleted)
	fmt.Fprintf(cmd.out, "Tests passed:         %d\n", d.Stats.TestsPassed)
	fmt.Fprintf(cmd.out, "Unlocked levels:      %v\n", d.Progress.UnlockedLevels)

	if len(d.Progress.Books) > 0 {
		ids := make([]string, 0, len(d.Progress.Books))
		for id := range d.Progress.Books {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Fprintf(cmd.out, "\nBooks:\n")
		for _, id := range ids {
			b := d.Progress.Books[id]
			status := "reading"
			if b.IsCompleted {
				status = "completed"
			}
			fmt.Fprintf(cmd.out, "  %-10s chapter %d/%d  %s\n", id, b.CurrentChapter+1, b.TotalChapters, status)
		}
	}

	unlocked := make(map[string]bool, len(d.Unlocked))
	for _, id := range d.Unlocked {
		unlocked[id] = true
	}
	fmt.Fprintf(cmd.out, "\nAchievements (%d/%d):\n", len(d.Unlocked), len(d.Achievements))
	for _, a := range d.Achievements {
		mark := " "
		if unlocked[a.ID] {
			mark = "x"
		}
		fmt.Fprintf(cmd.out, "  [%s] %s %s\n", mark, a.Icon, a.Title)
	}
	return nil
}
