// Command paretosp runs bi-objective shortest-path searches over a
// graph file and reports pruned-average timings per problem, the Go
// counterpart to the original timing harness's command-line tools.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "paretosp:", err)
		os.Exit(1)
	}
}
