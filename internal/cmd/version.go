package cmd

import "fmt"

// buildVersion is overridable at link time.
var buildVersion = "dev"

type Version struct{}

func (v *Version) Run() error {
	fmt.Println("joyrelay", buildVersion)
	return nil
}
