package main

import (
	"flag"
	"fmt"
)

type versionCmd struct{ r *root }

func (v *versionCmd) Run() error {
	line := fmt.Sprintf("%s version %s", v.Program(), version)
	if commit != "" {
		line += " (" + commit
		if date != "" {
			line += " " + date
		}
		line += ")"
	}
	fmt.Fprintln(v.r.out(), line)
	return nil
}

func (v *versionCmd) Program() string {
	if v.r == nil {
		return "thumbforge"
	}
	return v.r.Program()
}

func (v *versionCmd) FlagSet() *flag.FlagSet { return nil }
