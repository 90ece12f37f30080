package main

import "github.com/PeteRichardson/Protect/cmd"

func main() {
	cmd.Execute()
}
