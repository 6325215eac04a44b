package main

import "github.com/kamal-hamza/tex2mat/cmd"

func main() {
	cmd.Execute()
}
