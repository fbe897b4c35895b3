package main

import "artifactory-cleanup/internal/cli"

func main() {
	cli.Execute()
}
