package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/pathfind/cliout"
	"github.com/jongio/pathfind/finder"
	"github.com/jongio/pathfind/logutil"
	"github.com/jongio/pathfind/report"
	"github.com/jongio/pathfind/shellutil"
	"github.com/jongio/pathfind/version"
)

const longHelp = `Searches the current path for instances of a file with the specified name,
based on the value of the %[1]s environment variable.

If the specified filename does not include an extension, then the search will
include all extensions from the %[2]s environment variable (which typically
includes executable extensions such as .exe and .bat).

Additionally, the * and ? wildcards are supported. Put -- before a filename
that starts with a dash.`

// Command is the pathfind root command and the status of its last run.
type Command struct {
	cmd    *cobra.Command
	cfg    finder.Config
	info   *version.Info
	stdout io.Writer
	stderr io.Writer

	debug   bool
	noColor bool
	status  finder.Status
}

// NewCommand creates the root command. cfg supplies the defaults of the
// variable flags and everything the flags do not cover.
func NewCommand(cfg finder.Config, stdout, stderr io.Writer) *Command {
	defaults := finder.DefaultConfig()
	if cfg.PathVar == "" {
		cfg.PathVar = defaults.PathVar
	}
	if cfg.ExtensionVar == "" {
		cfg.ExtensionVar = defaults.ExtensionVar
	}
	if cfg.Separator == "" {
		cfg.Separator = defaults.Separator
	}
	if cfg.ExtensionSeparator == "" {
		cfg.ExtensionSeparator = defaults.ExtensionSeparator
	}
	if cfg.Env == nil {
		cfg.Env = defaults.Env
	}

	c := &Command{
		cfg:    cfg,
		info:   version.New("pathfind"),
		stdout: stdout,
		stderr: stderr,
	}

	cmd := &cobra.Command{
		Use:   "pathfind [flags] [--] <filename>",
		Short: "Find files on the search path",
		Long:  fmt.Sprintf(longHelp, cfg.PathVar, cfg.ExtensionVar),
		Args:  cobra.ArbitraryArgs,
		// Errors and usage are reported by Run
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.run(cmd, args)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) { c.help(cmd) })

	flags := cmd.Flags()
	flags.SetNormalizeFunc(normalizeFlagName)
	flags.BoolVar(&c.debug, "debug", false, "Enable debug logging on stderr (also "+logutil.EnvDebug+"=true)")
	flags.BoolVar(&c.noColor, "no-color", false, "Disable colored output (also "+cliout.EnvNoColor+")")
	flags.StringVar(&c.cfg.PathVar, "path-var", cfg.PathVar, "Environment variable holding the directories to search")
	flags.StringVar(&c.cfg.ExtensionVar, "ext-var", cfg.ExtensionVar, "Environment variable holding the extensions to try")
	flags.StringVar(&c.cfg.Separator, "separator", cfg.Separator, "List separator of the search path variable")
	flags.StringVar(&c.cfg.ExtensionSeparator, "ext-separator", cfg.ExtensionSeparator, "List separator of the extension variable")

	version.Attach(cmd, c.info)
	c.cmd = cmd
	return c
}

// Run executes the command with args and returns the process exit code.
func (c *Command) Run(args []string) int {
	c.status = finder.StatusSuccess
	c.cmd.SetArgs(rewriteHelpArgs(args))

	if err := c.cmd.Execute(); err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		fmt.Fprintf(c.stderr, "Run '%s --help' for usage.\n", c.cmd.Name())
		return finder.StatusError.ExitCode()
	}
	return c.status.ExitCode()
}

// Status returns the status of the last run.
func (c *Command) Status() finder.Status {
	return c.status
}

func (c *Command) run(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		c.help(cmd)
		return
	}

	var rep *report.Reporter
	defer func() {
		if r := recover(); r != nil {
			logutil.NewLogger("cli").Debug("recovered from panic", "value", r)
			if rep == nil {
				rep = c.reporter()
			}
			c.status = finder.Report(rep, finder.UnexpectedError(&finder.PanicError{Value: r}))
		}
	}()

	logutil.SetupLoggerWithWriter(c.stderr, c.debug || logutil.DebugFromEnv())
	log := logutil.NewLogger("cli")
	if len(args) > 1 {
		log.Debug("ignoring extra arguments", "args", args[1:])
	}

	rep = c.reporter()
	rep.Banner(c.info.Banner())

	f := finder.New(c.cfg, rep)
	out, err := f.Find(args[0])
	if err != nil {
		c.status = f.Fail(err)
		return
	}
	log.Debug("run complete", "status", out.Status, "patterns", out.Patterns)
	c.status = out.Status
}

func (c *Command) reporter() *report.Reporter {
	useColor := !c.noColor && cliout.DetectColor(c.stdout)
	return report.New(cliout.New(c.stdout, useColor), c.cfg.PathVar, c.cfg.ExtensionVar)
}

func (c *Command) help(cmd *cobra.Command) {
	rep := c.reporter()
	p := rep.Printer()

	rep.Banner(c.info.Banner())
	p.Newline()
	p.Plain("%s", cmd.Long)
	p.Newline()
	p.Header("Usage:")
	p.Newline()
	p.Item("%s", cmd.UseLine())
	p.Newline()
	p.Header("Flags:")
	p.Plain("%s", strings.TrimRight(cmd.Flags().FlagUsages(), "\n"))
	p.Newline()
	p.Plain("To view the value of the %s environment variable, use:", c.cfg.PathVar)
	p.Newline()
	p.Item("%s", shellutil.ShowVariable(shellutil.Detect(c.cfg.Env), c.cfg.PathVar))
}

// rewriteHelpArgs turns the DOS-style help switches -? and /? into --help,
// which cobra understands.
func rewriteHelpArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if arg == "-?" || arg == "/?" {
			arg = "--help"
		}
		out[i] = arg
	}
	return out
}

// normalizeFlagName lets --path_var stand for --path-var.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
