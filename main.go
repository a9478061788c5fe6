package main

import "github.com/Sarthak1642/file-organization/cmd"

func main() {
	cmd.Execute()
}
