package main

import "exoplayerlcevc/cmd"

func main() {
	cmd.Execute()
}
