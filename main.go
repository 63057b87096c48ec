package main

import (
	"github.com/sjzar/ytscribe/cmd"
)

func main() {
	cmd.Execute()
}
