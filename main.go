package main

import "github.com/unkn0wn-root/sha1-go/cmd"

func main() {
	cmd.Execute()
}
