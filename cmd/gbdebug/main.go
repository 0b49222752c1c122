// Command gbdebug loads a ROM image and single-steps it in an interactive
// terminal debugger.
package main

import (
	"fmt"
	"os"

	"dmg01/cpu"
	"dmg01/mem"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <rom>\n", os.Args[0])
		os.Exit(1)
	}

	rom, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	bus := mem.NewMmu(rom)
	c := cpu.New(bus)
	c.Debug(nil, 0x0100)
}
