// Command cakecollate runs one CakeCollate command against the configured
// store and prints its feedback.
//
// Usage:
//
//	cakecollate [-quiet] [COMMAND [ARGS]...]
//
// Arguments after the command word use the prefix/value form, for example
//
//	cakecollate add "n/Alice Pauline" p/94351253 e/alice@example.com "a/123, Jurong West" "o/Chocolate Cake" d/20/06/2100
//
// Without a command word it reads one command per line from standard input
// until exit or end of input, keeping the displayed lists between lines.
//
// Storage, archiving, logging and metrics are configured through
// CAKECOLLATE_* environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"cakecollate/internal/logic/commands"
	"cakecollate/internal/platform/config"
	"cakecollate/pkg/domain"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var exitFunc = os.Exit

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli(ctx, os.Args[1:], environMap(os.Environ()), os.Stdin, os.Stdout, os.Stderr)
	stop()
	exitFunc(code)
}

func environMap(environ []string) map[string]string {
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}

func cli(ctx context.Context, args []string, environ map[string]string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cakecollate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quiet := fs.Bool("quiet", false, "disable logging")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := config.LoadFrom(environ)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}

	rest := fs.Args()
	var cmd commands.Command
	if len(rest) > 0 && rest[0] != RestoreWord {
		cmd, err = parseCommand(rest, domain.SystemClock{})
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	}

	a, err := openApp(ctx, cfg, *quiet)
	if err != nil {
		fmt.Fprintf(stderr, "startup: %v\n", err)
		return exitFailure
	}
	var code int
	if len(rest) == 0 {
		code = a.session(ctx, stdin, stdout, stderr)
	} else {
		code = a.run(ctx, cmd, stdout, stderr)
	}
	if err := a.close(); err != nil {
		fmt.Fprintf(stderr, "shutdown: %v\n", err)
		if code == exitOK {
			code = exitFailure
		}
	}
	return code
}

func (a *app) run(ctx context.Context, cmd commands.Command, stdout, stderr io.Writer) int {
	if cmd == nil {
		arc, err := a.svc.RestoreLatest(ctx)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitFailure
		}
		fmt.Fprintf(stdout, "Restored snapshot %s from %s\n", arc.ID, arc.CreatedAt.Format("2006-01-02 15:04:05"))
		a.printOrders(stdout)
		return exitOK
	}

	res, err := a.svc.Execute(ctx, cmd)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	fmt.Fprintln(stdout, res.Feedback)
	if res.ShowHelp {
		for _, u := range commands.Usages() {
			fmt.Fprintln(stdout, u)
		}
		fmt.Fprintln(stdout, RestoreWord+": Restores the newest archived snapshot.")
		return exitOK
	}
	if res.Exit {
		return exitOK
	}
	a.printOrders(stdout)
	return exitOK
}

func (a *app) printOrders(w io.Writer) {
	for i, o := range a.svc.FilteredOrderList() {
		fmt.Fprintf(w, "%d. %s\n", i+1, o)
	}
	items := a.svc.FilteredOrderItemList()
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w, "Order items:")
	for i, item := range items {
		fmt.Fprintf(w, "%d. %s\n", i+1, item)
	}
}
