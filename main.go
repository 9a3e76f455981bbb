package main

import "github.com/jwoolee/timsync/cmd"

func main() {
	cmd.Execute()
}
