package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strings"

	iseven "github.com/Manbeardo/is-even"
	"github.com/Manbeardo/is-even/internal/logging"
	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
)

const (
	DefaultProgram = "is-even"
	LogLevelEnv    = "IS_EVEN_LOG_LEVEL"
)

type CLI struct {
	Number   string `arg:"" name:"number" help:"Integer to check."`
	LogLevel string `name:"log-level" default:"warn" hidden:"" help:"Diagnostics level, read from IS_EVEN_LOG_LEVEL."`
}

// Run executes one invocation. args[0] is the program name as invoked. The
// returned value is the process exit code.
func Run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	program := DefaultProgram
	if len(args) > 0 {
		program = args[0]
		args = args[1:]
	}

	cli, err := parseArgs(program, args, stderr, getenv)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return ExitCode(err)
	}

	logger := newLogger(cli.LogLevel, stderr)
	logger.Debug("parsed arguments", "program", program, "raw", cli.Number)

	num, err := ParseNumber(cli.Number)
	if err != nil {
		logger.Debug("rejected argument", "err", err)
		fmt.Fprintln(stdout, err)
		return ExitCode(err)
	}

	even := iseven.IsEvenBig(num)
	text := num.String()
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		// BigComma mutates its argument.
		logger.Debug(
			"evaluated number",
			"value", humanize.BigComma(new(big.Int).Set(num)),
			"digits", len(strings.TrimPrefix(text, "-")),
			"even", even,
		)
	}
	fmt.Fprintf(stdout, "Number %s is %s\n", text, iseven.Label(even))
	return ExitSuccess
}

func parseArgs(program string, args []string, stderr io.Writer, getenv func(string) string) (CLI, error) {
	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(program),
		kong.Description("Report whether an integer is even or odd."),
		kong.Writers(stderr, stderr),
		kong.Exit(func(int) {}),
		kong.Resolvers(envResolver(getenv)),
	)
	if err != nil {
		return cli, fmt.Errorf("building parser: %w", err)
	}
	// "--" ends flag parsing so that every token, including "-8", counts as
	// a positional argument.
	_, err = parser.Parse(append([]string{"--"}, args...))
	if err != nil {
		return cli, &UsageError{Program: program, Err: err}
	}
	return cli, nil
}

func envResolver(getenv func(string) string) kong.ResolverFunc {
	return func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (interface{}, error) {
		if flag.Name != "log-level" || getenv == nil {
			return nil, nil
		}
		if val := getenv(LogLevelEnv); val != "" {
			return val, nil
		}
		return nil, nil
	}
}

func newLogger(levelName string, stderr io.Writer) *slog.Logger {
	level, err := logging.ParseLevel(levelName)
	logger := logging.New(stderr, level)
	if err != nil {
		logger.Warn("falling back to default log level", "env", LogLevelEnv, "err", err)
	}
	return logger
}

// ParseNumber parses raw as a base-10 signed integer of any width. Leading
// and trailing whitespace is ignored; an optional "+" or "-" sign is allowed.
func ParseNumber(raw string) (*big.Int, error) {
	num, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		return nil, &ParseError{Input: raw, Err: errNotInteger}
	}
	return num, nil
}
