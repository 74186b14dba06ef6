package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/soundfolio/internal/server"
	"github.com/urfave/cli/v3"
)

// DevServer runs the in-memory catalog until interrupted.
func (r *Runner) DevServer(ctx context.Context, cmd *cli.Command) error {
	addr := cmd.String("addr")
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	}

	catalog := server.NewCatalogHandler(r.logger)
	router := server.NewCatalogRouter(r.config.Server.Prefix, catalog, r.logger)

	r.writeSuccess("Serving catalog at http://%s%s", addr, r.config.Server.Prefix)
	return server.ListenAndServe(ctx, addr, router, r.logger)
}
