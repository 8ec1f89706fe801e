package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
)

const cliVersion = "1.0.0"

const defaultConfigFile = "config.yml"

var osExit = os.Exit

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	osExit(code)
}

// options are the global flags accepted before or after the command.
type options struct {
	configFile string
	yes        bool
}

// run dispatches a command and returns its exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("blogposts", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printHelp(stdout) }

	var opts options
	fs.StringVarP(&opts.configFile, "config", "c", "", "path to the YAML config file")
	fs.BoolVarP(&opts.yes, "yes", "y", false, "do not ask for confirmation")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	rest := fs.Args()
	if len(rest) < 1 {
		printHelp(stdout)
		return 1
	}

	c := &cli{opts: opts, stdin: stdin, stdout: stdout, stderr: stderr}

	cmd := strings.ToLower(rest[0])
	switch cmd {
	case "help":
		printHelp(stdout)
		return 0
	case "version":
		fmt.Fprintf(stdout, "blogposts version %s\n", cliVersion)
		return 0
	case "serve":
		return c.serve(ctx)
	case "seed":
		if len(rest) < 2 {
			fmt.Fprintln(stdout, "Error: fixture file path required for seed")
			return 1
		}
		return c.seed(ctx, rest[1])
	case "backup":
		file := ""
		if len(rest) > 1 {
			file = rest[1]
		}
		return c.backup(file)
	case "restore":
		if len(rest) < 2 {
			fmt.Fprintln(stdout, "Error: backup file path required for restore")
			return 1
		}
		return c.restore(rest[1])
	case "clean":
		return c.clean(ctx)
	default:
		fmt.Fprintf(stdout, "Unknown command: %s\n\n", rest[0])
		printHelp(stdout)
		return 1
	}
}

func printHelp(w io.Writer) {
	helpText := `Usage: blogposts [--config <file>] <command> [options]
Commands:
  help                 Display this help message.
  version              Show version information.
  serve                Run the blogs and posts HTTP API.
  seed <file>          Create the blogs and posts listed in a YAML fixture file.
  backup [file]        Write a backup of the badger database.
  restore <file>       Replace the badger database contents with a backup.
  clean                Delete every blog and post.
Options:
  -c, --config <file>  Config file (default: config.yml when present).
  -y, --yes            Do not ask for confirmation.
`
	fmt.Fprintln(w, helpText)
}
