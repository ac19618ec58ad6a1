package main

import (
	"github.com/ib-77/faultline/internal/cli"
	"github.com/ib-77/faultline/pkg/fault"
)

func main() {
	fault.Main(func() error {
		return cli.NewRootCmd().Execute()
	})
}
