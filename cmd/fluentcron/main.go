// Command fluentcron prints cron expressions built from flags.
//
//	fluentcron daily --at 05:30          # 30 5 * * *
//	fluentcron weekly --on fri --at 17   # 0 17 * * 5
//	fluentcron presets -o yaml
package main

import (
	"fmt"
	"os"

	"github.com/jdziat/fluentcron/cmd/fluentcron/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
