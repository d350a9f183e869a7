package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rakhulsr/go-catalog/app/cmd"
	"github.com/Rakhulsr/go-catalog/app/configs"
)

func main() {
	env := configs.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.RunCli(ctx, env)
}
