package main

import "github.com/datapipe-dev/vercompat/cmd"

func main() {
	cmd.Execute()
}
