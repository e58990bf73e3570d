package main

import "github.com/surge-downloader/punch/cmd"

func main() {
	cmd.Execute()
}
