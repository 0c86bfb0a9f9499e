package main

import "github.com/zlobste/subnetcalc/internal/cli"

func main() {
	cli.Execute()
}
