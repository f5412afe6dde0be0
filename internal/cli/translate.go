package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mrlokans/audaroky/internal/config"
	"github.com/mrlokans/audaroky/internal/entrypoint"
	"github.com/mrlokans/audaroky/internal/logging"
	"github.com/mrlokans/audaroky/internal/services"
	"github.com/mrlokans/audaroky/internal/translator"
)

// WordTranslator is the part of the reader the translate command needs.
type WordTranslator interface {
	TranslateWord(ctx context.Context, word, contextSentence, lang string) (services.WordResult, error)
}

type TranslateCommand struct {
	Word     string
	Context  string
	Language string
	Timeout  time.Duration
	Verbose  bool

	out io.Writer
}

func NewTranslateCommand() *TranslateCommand {
	return &TranslateCommand{out: os.Stdout}
}

func (cmd *TranslateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)

	fs.StringVar(&cmd.Word, "word", "", "Word to translate (required)")
	fs.StringVar(&cmd.Context, "context", "", "Sentence the word appears in")
	fs.StringVar(&cmd.Language, "lang", translator.DefaultLanguage, "Target language code")
	fs.DurationVar(&cmd.Timeout, "timeout", 2*time.Minute, "Give up after this long")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s translate [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Translate a word using the offline dictionary, the cache or the model.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s translate -word house\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s translate -word lighthouse -context \"The lighthouse stood alone.\" -lang de\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Word = strings.TrimSpace(cmd.Word)
	if cmd.Word == "" {
		fs.Usage()
		return fmt.Errorf("word is required")
	}
	if _, ok := translator.Languages()[cmd.Language]; !ok {
		return fmt.Errorf("unsupported language: %s", cmd.Language)
	}

	return nil
}

func (cmd *TranslateCommand) Run() error {
	env := "production"
	if cmd.Verbose {
		env = "development"
	}
	app, err := entrypoint.Build(config.NewConfig(), "cli", logging.New(env))
	if err != nil {
		return err
	}
	defer app.Close()

	return cmd.translate(app.Reader)
}

func (cmd *TranslateCommand) translate(reader WordTranslator) error {
	ctx, cancel := context.WithTimeout(context.Background(), cmd.Timeout)
	defer cancel()

	res, err := reader.TranslateWord(ctx, cmd.Word, cmd.Context, cmd.Language)
	if err != nil {
		return err
	}

	switch res.Status {
	case services.StatusCredentialMissing:
		return fmt.Errorf("no API key stored and %q is not available offline; run set-key first", cmd.Word)
	case services.StatusFailed:
		return fmt.Errorf("translation of %q failed", cmd.Word)
	}

	fmt.Fprintf(cmd.out, "%s → %s\n", res.Word, res.Translation)
	if res.Reward != nil {
		fmt.Fprintf(cmd.out, "+%d XP (total %d)\n", res.Reward.XP, res.Reward.TotalXP)
		for _, a := range res.Reward.Achievements {
			fmt.Fprintf(cmd.out, "Achievement unlocked: %s (+%d XP)\n", a.Title, a.XPReward)
		}
	}
	return nil
}
