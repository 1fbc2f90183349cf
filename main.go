package main

import "github.com/vietdv277/awsctl/cmd"

func main() {
	cmd.Execute()
}
