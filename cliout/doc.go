// Package cliout provides styled text output for the pathfind command line.
//
// A Printer writes to any io.Writer. Color is applied with fatih/color and is
// only enabled when the destination is a terminal and neither --no-color nor
// the NO_COLOR environment variable asks otherwise:
//
//	p := cliout.New(os.Stdout, cliout.DetectColor(os.Stdout))
//	p.Header("tool.exe is present in:")
//	p.Item(`C:\Tools\`)
//	p.Warning("Caution: a matching file is also present in the current directory.")
//
// With color disabled the output is plain text, which is what tests compare
// against.
package cliout
