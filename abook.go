package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var version = "dev"

var (
	configPath string
	debugFlag  bool
	logFile    string
	plainFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "abook",
	Short: "A tiny interactive address book",
	Long: `abook keeps name/lastname pairs in memory for the length of a session.

Commands, one per line:
  add      add an entry (an existing name is left untouched)
  list     show all entries
  sort     show all entries ordered by name
  filter   show entries whose name or lastname equals a search term
  quit     leave`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAbook,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the abook version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "abook", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "Log at debug level")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write the diagnostic log to this file")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false, "Don't use raw terminal mode")
	rootCmd.AddCommand(versionCmd)
}

// loadRunConfig loads the config file and applies command line overrides.
func loadRunConfig(cmd *cobra.Command) (*Config, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if debugFlag {
		cfg.Logging.Level = "debug"
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Logging.File = logFile
	}
	if plainFlag {
		cfg.Terminal.Plain = true
	}
	return cfg, nil
}

func runAbook(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	book := NewAddressBook()
	fd := int(os.Stdin.Fd())
	if cfg.Terminal.Plain || !term.IsTerminal(fd) {
		logger.Debug("Using plain line input")
		in := newPlainReader(cmd.InOrStdin(), cmd.OutOrStdout())
		return NewSession(book, in, newConsole(cmd.OutOrStdout(), nil), cfg.Prompts, logger).Run()
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("unable to put terminal into raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	t := term.NewTerminal(rw, "")
	t.SetBracketedPasteMode(true)
	defer t.SetBracketedPasteMode(false)

	var esc *term.EscapeCodes
	if cfg.Terminal.Color {
		esc = t.Escape
	}
	out := newConsole(t, esc)
	out.info("Welcome to abook!")

	err = NewSession(book, ttyReader{t}, out, cfg.Prompts, logger).Run()
	if err != nil {
		logger.Error("Session failed", zap.Error(err))
		out.critical("%v", err)
		return shownError{err}
	}
	return nil
}

// shownError is an error already printed on the terminal.
type shownError struct {
	error
}

func (e shownError) Unwrap() error { return e.error }

// reportError prints err to w unless the terminal already showed it.
func reportError(w io.Writer, err error) {
	if errors.As(err, new(shownError)) {
		return
	}
	fmt.Fprintf(w, "abook: %v\n", err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
