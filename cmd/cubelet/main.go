// cubelet - interactive facelet-level 3x3 cube simulator.
package main

import (
	"github.com/seamusw/cubelet/internal/cli"
)

func main() {
	cli.Execute()
}
