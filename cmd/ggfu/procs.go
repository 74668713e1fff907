package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gogpu/ggfu/pdb"

	_ "github.com/gogpu/ggfu/clothify"
	_ "github.com/gogpu/ggfu/sphere"
)

func runProcs(stdout io.Writer) error {
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMENU\tPARAMS")
	for _, p := range pdb.Procedures() {
		names := make([]string, len(p.Params))
		for i, prm := range p.Params {
			names[i] = prm.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%v\n", p.Name, p.MenuPath, names)
	}
	return tw.Flush()
}
