package main

import "github.com/theirongolddev/eduforecast/cmd"

func main() {
	cmd.Execute()
}
