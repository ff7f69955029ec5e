// Command rtrans enumerates, stores and inspects real transducers.
//
// Usage:
//
//	rtrans generate --max-states 2 --limit 10000
//	rtrans eval 17 "01[:10:]"
//	rtrans behavior 17 --bits 5
//	rtrans classify --bits 5
//	rtrans minimal --max-states 2 --save
//	rtrans bisim 3 17
//	rtrans show 17 --yaml
//	rtrans catalog halve
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{stdout: os.Stdout, stderr: os.Stderr}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "rtrans:", err)
		stop()
		os.Exit(1)
	}
}
