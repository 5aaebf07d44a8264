package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/quicktext/internal/config"
	"github.com/ytget/quicktext/internal/platform"
	"github.com/ytget/quicktext/internal/search"
	"github.com/ytget/quicktext/internal/store"
)

// Options configures the command tree
type Options struct {
	Version string

	// RunGUI opens the window. Without it the root command prints help.
	RunGUI func(config.Overrides) error

	// Clipboard defaults to the system clipboard
	Clipboard platform.Clipboard

	// ConfigDirs are searched for .quicktext.yaml
	ConfigDirs []string
}

// environment is shared by all commands of one invocation
type environment struct {
	opts      Options
	overrides config.Overrides
	verbose   bool
}

// New creates the root command
func New(opts Options) *cobra.Command {
	env := &environment{opts: opts}

	cmd := &cobra.Command{
		Use:          "quicktext",
		Short:        "Reusable text presets, one click away.",
		Version:      opts.Version,
		SilenceUsage: true,
		Example: `
quicktext
quicktext --hidden --hotkey ctrl+shift+space
quicktext copy Common Welcome
`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.RunGUI == nil {
				return cmd.Help()
			}
			return opts.RunGUI(env.overrides)
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().BoolVar(&env.verbose, "verbose", false, "log diagnostics to stderr")

	addCommands(cmd, env)
	return cmd
}

// addCommands registers the subcommands on topLevel
func addCommands(topLevel *cobra.Command, env *environment) {
	addList(topLevel, env)
	addSearch(topLevel, env)
	addCopy(topLevel, env)
	addAdd(topLevel, env)
	addExport(topLevel, env)
	addPath(topLevel, env)
}

// load resolves the launch-time overrides. Subcommands stay quiet unless
// --verbose is given.
func (e *environment) load(cmd *cobra.Command) error {
	if cmd.HasParent() && !e.verbose {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(cmd.ErrOrStderr())
	}

	o, err := config.LoadOverrides(cmd.Flags(), e.opts.ConfigDirs...)
	if err != nil {
		return err
	}
	e.overrides = o
	return nil
}

// dataFile is the presets file this invocation works on. Preferences saved
// by the window are not read here; use --data or QUICKTEXT_DATA.
func (e *environment) dataFile() string {
	return platform.ResolveDataFile(e.overrides.DataFileOverride(nil))
}

// openStore loads the presets file. Recovered load problems are printed as
// warnings; the returned store is always usable.
func (e *environment) openStore(cmd *cobra.Command) *store.Service {
	s, err := store.Open(store.Options{Path: e.dataFile()})
	if err != nil {
		warn(cmd, err)
	}
	return s
}

func (e *environment) clipboard() platform.Clipboard {
	if e.opts.Clipboard != nil {
		return e.opts.Clipboard
	}
	return platform.NewSystemClipboard()
}

func warn(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
}

// checkSave turns a save that landed in the fallback location into a
// warning
func checkSave(cmd *cobra.Command, err error) error {
	var saveErr *store.SaveError
	if errors.As(err, &saveErr) && saveErr.Status.IsPersisted() {
		warn(cmd, err)
		return nil
	}
	return err
}

// notFound decorates err with the closest candidates to name
func notFound(kind, name string, candidates []string, err error) error {
	suggestions := search.Suggest(name, candidates)
	if len(suggestions) == 0 {
		return fmt.Errorf("%s %q: %w", kind, name, err)
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return fmt.Errorf("%s %q: %w (did you mean %s?)", kind, name, err, strings.Join(quoted, ", "))
}
