package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/kouden/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server
//	-w string   base URL of the realtime endpoint
//	-i int      online check interval (in seconds)
//	-m int      mutation timeout (in seconds)
//	-n int      page size
//	-d string   local database path
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs so unrelated flags do not break
// parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-i", "-m", "-n", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.RealtimeURL, "w", cfg.RealtimeURL, "realtime endpoint base URL")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	mutationTimeout := fs.Int("m", int(cfg.MutationTimeout.Seconds()), "mutation timeout (in seconds)")
	fs.IntVar(&cfg.PageSize, "n", cfg.PageSize, "rows per page")
	fs.StringVar(&cfg.LocalDBPath, "d", cfg.LocalDBPath, "local database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.MutationTimeout = time.Duration(*mutationTimeout) * time.Second
}
