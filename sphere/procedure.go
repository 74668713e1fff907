package sphere

import (
	"github.com/gogpu/ggfu"
	"github.com/gogpu/ggfu/pdb"
)

// ProcedureName is the name the sphere script registers under.
const ProcedureName = "python_fu_sphere"

// Procedure is the registration record of the sphere script.
var Procedure = pdb.Procedure{
	Name:       ProcedureName,
	Blurb:      "Simple spheres with drop shadows",
	Help:       "Simple spheres with drop shadows (based on script-fu version)",
	Author:     "James Henstridge",
	Copyright:  "James Henstridge",
	Date:       "1997-1999",
	MenuPath:   "<Toolbox>/File/New From/Misc/Sphere {py}",
	ImageTypes: "RGB*, GRAY*, INDEXED*",
	Params: []pdb.Param{
		{Kind: pdb.ParamInt, Name: "radius", Description: "Radius for sphere", Default: 100},
		{Kind: pdb.ParamSlider, Name: "light", Description: "light angle", Default: 45, Range: &pdb.Range{Min: 0, Max: 360, Step: 1}},
		{Kind: pdb.ParamToggle, Name: "shadow", Description: "shadow?", Default: true},
		{Kind: pdb.ParamColor, Name: "bg_colour", Description: "background", Default: ggfu.White},
		{Kind: pdb.ParamColor, Name: "sphere_colour", Description: "sphere", Default: ggfu.Red},
	},
}

func init() {
	pdb.Register(Procedure)
}

// SpecFromArgs builds a Spec from arguments bound to Procedure.
func SpecFromArgs(a pdb.Args) Spec {
	return Spec{
		Radius:     float64(a.Int("radius")),
		LightAngle: a.Float("light"),
		Shadow:     a.Bool("shadow"),
		Background: a.Color("bg_colour"),
		Color:      a.Color("sphere_colour"),
	}
}

// Args returns s as procedure arguments, the inverse of SpecFromArgs for
// whole-number radii.
func (s Spec) Args() map[string]any {
	return map[string]any{
		"radius":        int(s.Radius),
		"light":         NormalizeAngle(s.LightAngle),
		"shadow":        s.Shadow,
		"bg_colour":     s.Background,
		"sphere_colour": s.Color,
	}
}
