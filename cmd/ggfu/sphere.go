package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/gogpu/ggfu/host"
	"github.com/gogpu/ggfu/internal/config"
	"github.com/gogpu/ggfu/internal/display"
	"github.com/gogpu/ggfu/sphere"
)

func runSphere(args []string, stdout io.Writer) error {
	f := config.NewFlags(flag.NewFlagSet("sphere", flag.ContinueOnError)).SphereFlags()
	cfg, l, err := setup(f, args)
	if err != nil {
		return err
	}
	defer closeLogger(l)

	spec := cfg.SphereSpec()
	if cfg.Output.Dump {
		cmds, err := sphere.Render(spec)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(stdout, host.NewRecording(cmds))
		return err
	}

	b, err := host.NewBackend(cfg.Output.Backend)
	if err != nil {
		return err
	}
	if _, err := sphere.Draw(b, spec); err != nil {
		return err
	}

	if fb, ok := b.(host.FileBackend); ok && cfg.Output.Path != "" {
		if err := fb.SaveToFile(cfg.Output.Path); err != nil {
			return err
		}
		l.Info("sphere saved", "path", cfg.Output.Path)
	}

	if cfg.Output.Display {
		pb, ok := b.(host.PixmapBackend)
		if !ok {
			return errors.New("sphere: backend " + cfg.Output.Backend + " has no image to display")
		}
		return display.Show(pb.Image(), fmt.Sprintf("sphere r=%g light=%g", spec.Radius, spec.LightAngle))
	}
	return nil
}
