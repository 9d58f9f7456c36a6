package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"biblia/internal/app"
	"biblia/internal/domain"
)

var (
	home     string
	apiURL   string
	lang     string
	timeout  time.Duration
	logLevel string
	asJSON   bool

	wire *app.Wire
)

// Execute runs the CLI with os.Args and cancels lookups on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return execute(ctx, newRootCmd())
}

// execute runs root and reports a failure on its stderr. Lookup failures
// answered by the API or lost in transport print as the bare message; any
// other failure (validation, flags, config) gets the "Error: " prefix.
func execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrApplication) || errors.Is(err, domain.ErrTransport) {
		fmt.Fprintln(root.ErrOrStderr(), err.Error())
	} else {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err.Error())
	}
	return err
}

func newRootCmd() *cobra.Command {
	wire = nil
	root := &cobra.Command{
		Use:           "biblia",
		Short:         "Look up verses, chapters, ranges and search results from the Bible API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(app.Config{
				Home:      home,
				APIURL:    apiURL,
				Lang:      lang,
				Timeout:   timeout,
				LogLevel:  logLevel,
				LogOutput: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if wire != nil {
				wire.Screens.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.biblia, or $"+app.EnvHome+")")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "Bible API base URL (default https://jesusrestaura.com, or $"+app.EnvAPIURL+")")
	root.PersistentFlags().StringVar(&lang, "lang", "", "message language: es or en (or $"+app.EnvLang+")")
	root.PersistentFlags().DurationVar(&timeout, "timeout", app.DefaultTimeout, "HTTP timeout per lookup")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print results as JSON")

	for _, def := range lookups {
		root.AddCommand(lookupCmd(def))
	}
	root.AddCommand(booksCmd(), configCmd(), shellCmd())
	return root
}

// userError carries the localized line shown to the user while keeping the
// underlying error for errors.Is/As.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

// describe localizes err for display.
func describe(err error) error {
	if err == nil {
		return nil
	}
	var ue *userError
	if errors.As(err, &ue) {
		return err
	}
	return &userError{msg: wire.Printer.Describe(err), err: err}
}
