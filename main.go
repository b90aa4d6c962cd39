package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/liuran001/SocialValidator-Go/validator"
	"github.com/liuran001/SocialValidator-Go/validator/app"
	"github.com/liuran001/SocialValidator-Go/validator/output"

	_ "github.com/liuran001/SocialValidator-Go/plugins/telegram"
	_ "github.com/liuran001/SocialValidator-Go/plugins/youtube"
)

var (
	versionName = ""
	commitSHA   = ""
	buildTime   = ""
)

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("socialvalidator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("c", "config.ini", "config file")
	platform := fs.String("p", "", "platform (telegram, youtube); defaults to DefaultPlatform")
	field := fs.String("f", "", "field to validate, or \"link\" to resolve profile links; defaults to the platform's first field")
	chatType := fs.String("chat-type", "", "telegram chat type for descriptions (user, group, channel, bot)")
	includeMedia := fs.Bool("media", false, "telegram messages carry media (caption limit)")
	soft := fs.Bool("soft", false, "youtube soft matching (hyphens and underscores ignored)")
	format := fs.String("o", "", "output format (text, table, json)")
	colorMode := fs.String("color", "", "color output (auto, always, never)")
	showVersion := fs.Bool("v", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	buildInfo := app.BuildInfo{
		RuntimeVer: runtime.Version(),
		BinVersion: versionName,
		CommitSHA:  commitSHA,
		BuildTime:  buildTime,
		BuildArch:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if *showVersion {
		fmt.Fprintf(stdout, "socialvalidator %s (%s, %s) %s %s\n",
			buildInfo.BinVersion, buildInfo.CommitSHA, buildInfo.BuildTime, buildInfo.RuntimeVer, buildInfo.BuildArch)
		return exitOK
	}

	overrides := map[string]any{}
	if *format != "" {
		overrides["OutputFormat"] = *format
	}
	if *colorMode != "" {
		overrides["Color"] = *colorMode
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := app.New(ctx, *configPath, buildInfo, overrides, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "socialvalidator: %v\n", err)
		return exitUsage
	}
	defer func() { _ = application.Shutdown(context.Background()) }()

	outFormat, err := output.ParseFormat(application.Config.GetString("OutputFormat"))
	if err != nil {
		fmt.Fprintf(stderr, "socialvalidator: %v\n", err)
		return exitUsage
	}
	mode, err := output.ParseColorMode(application.Config.GetString("Color"))
	if err != nil {
		fmt.Fprintf(stderr, "socialvalidator: %v\n", err)
		return exitUsage
	}

	opts := validator.Options{ChatType: *chatType, IncludeMedia: *includeMedia, Soft: *soft}
	printer := output.NewPrinter(stdout, outFormat, output.ResolveColors(mode))

	if values := fs.Args(); len(values) > 0 {
		results, err := application.Validate(ctx, *platform, *field, values, opts)
		if err != nil {
			fmt.Fprintf(stderr, "socialvalidator: %v\n", err)
			return exitUsage
		}
		if err := printer.Print(results); err != nil {
			fmt.Fprintf(stderr, "socialvalidator: %v\n", err)
			return exitUsage
		}
		return exitCode(results)
	}

	return streamStdin(ctx, application, printer, stdin, stderr, *platform, *field, opts)
}

// streamStdin validates stdin one line at a time and prints each result as
// soon as it is ready.
func streamStdin(ctx context.Context, application *app.App, printer *output.Printer, stdin io.Reader, stderr io.Writer,
	platform, field string, opts validator.Options) int {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		readErr <- readLines(ctx, stdin, lines)
	}()

	code := exitOK
	count := 0
	for res := range application.Stream(ctx, platform, field, lines, opts) {
		count++
		code = max(code, resultCode(res))
		if err := printer.Emit(res); err != nil {
			fmt.Fprintf(stderr, "socialvalidator: %v\n", err)
			return exitUsage
		}
	}
	if err := printer.Flush(); err != nil {
		fmt.Fprintf(stderr, "socialvalidator: %v\n", err)
		return exitUsage
	}

	if err := ctx.Err(); err != nil {
		fmt.Fprintf(stderr, "socialvalidator: %v\n", err)
		return exitUsage
	}
	if err := <-readErr; err != nil {
		fmt.Fprintf(stderr, "socialvalidator: read stdin: %v\n", err)
		return exitUsage
	}
	if count == 0 {
		fmt.Fprintln(stderr, "socialvalidator: no values to validate")
		return exitUsage
	}
	return code
}

// exitCode reports usage errors before rejections: a config error in any
// result means the invocation itself was wrong.
func exitCode(results []validator.Result) int {
	code := exitOK
	for _, res := range results {
		code = max(code, resultCode(res))
	}
	return code
}

func resultCode(res validator.Result) int {
	switch {
	case res.Err == nil:
		return exitOK
	case validator.IsConfigError(res.Err):
		return exitUsage
	default:
		return exitRejected
	}
}

// readLines sends each non-blank line of r to lines.
func readLines(ctx context.Context, r io.Reader, lines chan<- string) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		select {
		case lines <- line:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}
