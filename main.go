package main

import "github.com/gutenlab/datalake/cmd"

func main() {
	cmd.Execute()
}
