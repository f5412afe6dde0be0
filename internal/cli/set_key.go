package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrlokans/audaroky/internal/config"
	"github.com/mrlokans/audaroky/internal/entrypoint"
	"github.com/mrlokans/audaroky/internal/logging"
)

// KeyStore saves or removes the model API key.
type KeyStore interface {
	SetAPIKey(key string) error
	Clear() error
}

type SetKeyCommand struct {
	Key   string
	Stdin bool
	Clear bool

	in  io.Reader
	out io.Writer
}

func NewSetKeyCommand() *SetKeyCommand {
	return &SetKeyCommand{in: os.Stdin, out: os.Stdout}
}

func (cmd *SetKeyCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("set-key", flag.ContinueOnError)

	fs.StringVar(&cmd.Key, "key", "", "API key to store")
	fs.BoolVar(&cmd.Stdin, "stdin", false, "Read the API key from standard input")
	fs.BoolVar(&cmd.Clear, "clear", false, "Remove the stored API key")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s set-key [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Store the API key used for model calls. It is encrypted when CREDENTIAL_ENCRYPTION_KEY is set.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s set-key -key AIza...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  echo $GEMINI_KEY | %s set-key -stdin\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s set-key -clear\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	sources := 0
	for _, set := range []bool{cmd.Key != "", cmd.Stdin, cmd.Clear} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		fs.Usage()
		return fmt.Errorf("exactly one of -key, -stdin or -clear is required")
	}
	return nil
}

func (cmd *SetKeyCommand) Run() error {
	app, err := entrypoint.Build(config.NewConfig(), "cli", logging.New("production"))
	if err != nil {
		return err
	}
	defer app.Close()

	return cmd.apply(app.Credentials)
}

func (cmd *SetKeyCommand) apply(store KeyStore) error {
	if cmd.Clear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.out, "API key removed")
		return nil
	}

	key := cmd.Key
	if cmd.Stdin {
		line, err := bufio.NewReader(cmd.in).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read key: %w", err)
		}
		key = line
	}
	if err := store.SetAPIKey(strings.TrimSpace(key)); err != nil {
		return err
	}
	fmt.Fprintln(cmd.out, "API key saved")
	return nil
}
