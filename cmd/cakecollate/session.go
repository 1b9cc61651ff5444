package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"cakecollate/internal/logic/commands"
)

// linePrefixes lists every argument prefix recognised when splitting a line.
var linePrefixes = []string{
	prefixName, prefixPhone, prefixEmail, prefixAddress, prefixDescription, prefixItemIndexes,
	prefixTag, prefixDate, prefixTime, prefixRemark, prefixCost,
}

// splitLine turns one input line into the argument list a shell would pass
// for the same command: each "prefix/value" runs until the next word that
// starts with a known prefix, and preamble words stay separate.
func splitLine(line string) []string {
	var out []string
	inValue := false
	for _, word := range strings.Fields(line) {
		switch {
		case len(out) > 0 && startsWithPrefix(word):
			out = append(out, word)
			inValue = true
		case inValue:
			out[len(out)-1] += " " + word
		default:
			out = append(out, word)
		}
	}
	return out
}

func startsWithPrefix(word string) bool {
	p, _, ok := strings.Cut(word, "/")
	if !ok {
		return false
	}
	for _, known := range linePrefixes {
		if p == known {
			return true
		}
	}
	return false
}

// session runs one command per input line against the same service until
// exit, end of input or cancellation. Filtered lists carry over between
// lines, so indexes refer to the list printed by the previous command.
func (a *app) session(ctx context.Context, in io.Reader, stdout, stderr io.Writer) int {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return exitFailure
		}
		args := splitLine(sc.Text())
		if len(args) == 0 {
			continue
		}
		var cmd commands.Command
		if args[0] != RestoreWord {
			c, err := parseCommand(args, a.svc.Clock())
			if err != nil {
				fmt.Fprintln(stderr, err)
				continue
			}
			cmd = c
		}
		a.run(ctx, cmd, stdout, stderr)
		if _, ok := cmd.(commands.Exit); ok {
			return exitOK
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return exitFailure
	}
	return exitOK
}
