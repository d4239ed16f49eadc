package main

import "github.com/bdiaz22/agente/cmd"

func main() {
	cmd.Execute()
}
