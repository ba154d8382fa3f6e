// Command hopdist computes breadth-first hop-distance statistics for an
// undirected graph: the average over all reachable ordered pairs, and the
// average per externally labeled group with the lowest and highest groups.
//
// Usage:
//
//	hopdist run edges.txt labels.txt
//	hopdist global --edges edges.txt.gz --workers 0
//	hopdist groups -e edges.txt -l labels.txt --output json
//	hopdist bfs -e edges.txt --from 42
//	hopdist info -e edges.txt
//
// Results go to stdout and logs to stderr. Any error exits with status 1.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(stdout, stderr)
	root := a.rootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		a.logger().Error("hopdist failed", "error", err)
		return 1
	}
	return 0
}
