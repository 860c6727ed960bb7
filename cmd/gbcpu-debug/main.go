// Command gbcpu-debug wires a bus and CPU together and starts the
// interactive single-step inspector from the debug package.
package main

import (
	"flag"
	"fmt"
	"os"

	"gbcpu/bus"
	"gbcpu/cpu"
	"gbcpu/debug"
	"gbcpu/register"
)

func main() {
	bootPath := flag.String("boot", "", "boot ROM image")
	cartPath := flag.String("cart", "", "cartridge ROM image")
	flag.Parse()

	var bootImage, cartImage []byte
	var err error
	if *bootPath != "" {
		if bootImage, err = os.ReadFile(*bootPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *cartPath != "" {
		if cartImage, err = os.ReadFile(*cartPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	b := bus.New(bootImage, cartImage)
	c := cpu.New(register.File{PC: 0x0100})
	if bootImage != nil {
		c.Reg.PC = 0x0000
	}

	if err := debug.Run(debug.New(c, b, c.Reg.PC)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
