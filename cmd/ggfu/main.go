// Command ggfu runs the sphere and clothify scripts from the command line.
//
// Usage:
//
//	ggfu sphere [-radius 100] [-light 45] [-shadow] [-bg white] [-fg red] [-o sphere.png]
//	ggfu clothify [-x-blur 9] [-y-blur 9] [-azimuth 135] [-elevation 45] [-depth 3]
//	ggfu procs
//
// Settings are read from -config (YAML) and overridden by flags. The
// sphere -display window needs a binary built with -tags display.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gogpu/ggfu"
	"github.com/gogpu/ggfu/internal/config"
	"github.com/gogpu/ggfu/internal/logging"

	_ "github.com/gogpu/ggfu/host/backends/raster"
)

var errUsage = errors.New("usage: ggfu <sphere|clothify|procs|version> [flags]")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "sphere":
		return runSphere(args, stdout)
	case "clothify":
		return runClothify(args, stdout)
	case "procs":
		return runProcs(stdout)
	case "version":
		_, err := fmt.Fprintln(stdout, "ggfu", ggfu.Version)
		return err
	default:
		return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
	}
}

// setup parses flags for one subcommand and installs the logger.
func setup(f *config.Flags, args []string) (*config.Config, *logging.Logger, error) {
	cfg, err := f.Parse(args)
	if err != nil {
		return nil, nil, err
	}
	l, err := logging.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		return nil, nil, err
	}
	ggfu.SetLogger(l.Logger)
	return cfg, l, nil
}

func closeLogger(l *logging.Logger) {
	ggfu.SetLogger(nil)
	if err := l.Close(); err != nil {
		log.Printf("closing log file: %v", err)
	}
}
