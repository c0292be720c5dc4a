package main

import "fluttersweep/cmd"

func main() {
	cmd.Execute()
}
