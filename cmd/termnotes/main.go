package main

import "termnotes/cmd/termnotes/cmd"

func main() {
	cmd.Execute()
}
