package main

import "region-cards/cmd"

func main() {
	cmd.Execute()
}
