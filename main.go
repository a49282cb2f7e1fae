package main

import "datecalc/cmd"

func main() {
	cmd.Execute()
}
