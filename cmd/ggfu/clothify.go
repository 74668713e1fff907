package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/gogpu/ggfu/clothify"
	"github.com/gogpu/ggfu/internal/config"
	"github.com/gogpu/ggfu/pdb"
)

// runClothify prints the host calls that clothify a target of the
// configured size.
func runClothify(args []string, stdout io.Writer) error {
	f := config.NewFlags(flag.NewFlagSet("clothify", flag.ContinueOnError)).ClothifyFlags()
	cfg, l, err := setup(f, args)
	if err != nil {
		return err
	}
	defer closeLogger(l)

	t := clothify.Target{
		Image:    "image",
		Drawable: "drawable",
		Width:    cfg.Clothify.Width,
		Height:   cfg.Clothify.Height,
	}
	calls := pdb.NewCallLog()
	if err := clothify.Apply(context.Background(), calls, t, cfg.ClothifyParams()); err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, calls)
	return err
}
