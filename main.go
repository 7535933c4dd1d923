package main

import "github.com/albertdiaaz/letterfin/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
