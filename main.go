package main

import "github.com/user/trimview/cmd"

func main() {
	cmd.Execute()
}
