// gnomefavs saves and restores presets of the GNOME Shell favorite apps.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/wethinkt/gnomefavs/internal/cmd"
	"github.com/wethinkt/gnomefavs/internal/i18n"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, i18n.T("cmd.error.prefix", "Error:"), err)
		os.Exit(1)
	}
}
