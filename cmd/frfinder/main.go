// Command frfinder discovers frequented regions in a pangenome graph.
package main

import "github.com/katalvlaran/frfinder/cmd/frfinder/cmd"

func main() {
	cmd.Execute()
}
