package main

import (
	"bitbucket.org/almantas/shiftplan/internal/app/plan"
	"github.com/labstack/gommon/color"
)

func main() {
	printBanner()
	plan.Execute()
}

var (
	version string
)

func printBanner() {
	banner := `
        __    _ ______      __
   _____/ /_  (_) __/ /_____/ /___ _____
  / ___/ __ \/ / /_/ __/ __  / __ ` + "`" + `/ __ \
 (__  ) / / / / __/ /_/ /_/ / /_/ / / / /
/____/_/ /_/_/_/  \__/\__,_/\__,_/_/ /_/ v: %s
%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("bitbucket.org/almantas/shiftplan"))
}
