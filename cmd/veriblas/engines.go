package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/veriblas/veriblas/backend/webgpu"
)

func enginesCmd() *cli.Command {
	return &cli.Command{
		Name:  "engines",
		Usage: "Probe which engines are available on this machine",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Println("reference  available")
			fmt.Println("cpu        available")

			eng, err := webgpu.New()
			if err != nil {
				fmt.Printf("webgpu     unavailable (%v)\n", err)
				return nil
			}
			defer eng.Release()
			if info := eng.AdapterInfo(); info != nil {
				fmt.Printf("webgpu     available (%s, %s)\n", info.Device, info.Vendor)
			} else {
				fmt.Println("webgpu     available")
			}
			return nil
		},
	}
}
