package main

import "kilngas/cmd"

func main() {
	cmd.Execute()
}
