package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/lingoreader-backend/internal/client"
	"github.com/heartmarshall/lingoreader-backend/internal/config"
	"github.com/heartmarshall/lingoreader-backend/pkg/ctxutil"
)

// clientFlagKeys are the config keys that have a matching persistent flag.
var clientFlagKeys = []string{
	config.KeyServerURL,
	config.KeyToken,
	config.KeySourceLang,
	config.KeyTargetLang,
	config.KeyTimeout,
	config.KeyLogLevel,
}

// env is what every command needs once configuration is loaded.
type env struct {
	cfg *config.ClientConfig
	api *client.Client
	log *slog.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// Execute runs the reader command with the process arguments. Interrupts
// cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return CreateRootCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// CreateRootCommand creates the root command with all subcommands attached.
func CreateRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var cfgFile string
	e := &env{in: in, out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "reader",
		Short: "Read texts and turn selections into flashcards",
		Long: `reader is the command-line client for the lingoreader server.

It manages texts and flashcard lists and opens an interactive reading
session in which selected words are translated and saved as flashcards.

Examples:
  reader texts                      # list your texts
  reader texts import https://...   # import an article
  reader lists add Spanish          # create a flashcard list
  reader read <text-id>             # start reading`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.load(cmd, cfgFile)
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	setupFlags(rootCmd, &cfgFile)

	rootCmd.AddCommand(
		newTextsCommand(e),
		newListsCommand(e),
		newLanguagesCommand(e),
		newReadCommand(e),
	)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, cfgFile *string) {
	flags := cmd.PersistentFlags()
	flags.StringVar(cfgFile, "config", "", "config file (default is $HOME/.lingoreader.yaml)")
	flags.String(config.KeyServerURL, "", "lingoreader server URL")
	flags.String(config.KeyToken, "", "access token")
	flags.String(config.KeySourceLang, "", "source language code (auto to detect)")
	flags.String(config.KeyTargetLang, "", "target language code")
	flags.Duration(config.KeyTimeout, 0, "HTTP request timeout")
	flags.String(config.KeyLogLevel, "", "log level: debug, info, warn, error")
}

// load reads the client configuration and builds the API client.
func (e *env) load(cmd *cobra.Command, cfgFile string) error {
	v := config.NewClientViper(cfgFile)
	for _, key := range clientFlagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	cfg, err := config.LoadClient(v)
	if err != nil {
		return err
	}
	if cfg.SourceLang == "auto" {
		cfg.SourceLang = ""
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelWarn
	}

	e.cfg = cfg
	e.log = slog.New(slog.NewTextHandler(e.errOut, &slog.HandlerOptions{Level: level}))
	e.api = client.New(cfg.ServerURL, cfg.Token, &http.Client{Timeout: cfg.Timeout}, e.log)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	reqID := uuid.NewString()
	cmd.SetContext(ctxutil.WithRequestID(ctx, reqID))
	e.log.Debug("command started", slog.String("command", cmd.Name()), slog.String("request_id", reqID))
	return nil
}
