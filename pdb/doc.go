// Package pdb describes procedures in a host's procedure database: the
// registration metadata a script publishes, the typed arguments it accepts,
// and the calls it makes into other host procedures.
//
// Registration is declarative. A script builds a Procedure value and hands
// it to Register, usually from init():
//
//	func init() {
//	    pdb.Register(sphere.Procedure)
//	}
//
// Arguments are bound against a procedure's parameter list with
// Procedure.Bind, which fills defaults, converts strings and checks slider
// ranges, so scripts read typed values without further validation.
package pdb
