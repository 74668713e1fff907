package clothify

import "github.com/gogpu/ggfu/pdb"

// ProcedureName is the name the clothify script registers under.
const ProcedureName = "python_fu_clothify"

// Procedure is the registration record of the clothify script.
var Procedure = pdb.Procedure{
	Name:       ProcedureName,
	Blurb:      "Make the specified layer look like it is printed on cloth",
	Help:       "Make the specified layer look like it is printed on cloth",
	Author:     "James Henstridge",
	Copyright:  "James Henstridge",
	Date:       "1997-1999",
	MenuPath:   "<Image>/Filter/Alchemy/Clothify",
	ImageTypes: "RGB*, GRAY*",
	Params: []pdb.Param{
		{Kind: pdb.ParamInt, Name: "x_blur", Description: "X Blur", Default: 9},
		{Kind: pdb.ParamInt, Name: "y_blur", Description: "Y Blur", Default: 9},
		{Kind: pdb.ParamInt, Name: "azimuth", Description: "Azimuth", Default: 135},
		{Kind: pdb.ParamInt, Name: "elevation", Description: "elevation", Default: 45},
		{Kind: pdb.ParamInt, Name: "depth", Description: "Depth", Default: 3},
	},
}

func init() {
	pdb.Register(Procedure)
}

// ParamsFromArgs builds Params from arguments bound to Procedure.
// Background keeps its default.
func ParamsFromArgs(a pdb.Args) Params {
	p := DefaultParams()
	p.XBlur = a.Int("x_blur")
	p.YBlur = a.Int("y_blur")
	p.Azimuth = a.Int("azimuth")
	p.Elevation = a.Int("elevation")
	p.Depth = a.Int("depth")
	return p
}
