package main

import (
	"net/http"
	"os"

	"github.com/o0olele/shape3d/log"
	"github.com/o0olele/shape3d/server"
	"github.com/rs/cors"
	"github.com/urfave/cli"
)

var logger = log.New("shape3d")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

func serve(ctx *cli.Context) error {
	setupLogging(ctx)
	if ctx.Bool("trace-requests") {
		log.SetModuleLevel(log.ModuleServer, log.Debug)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: ctx.StringSlice("allowed-origin"),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(server.NewRouter())

	addr := ctx.String("addr")
	logger.Noticef("server starting on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "shape3d"
	app.Usage = "answer containment and bounding volume queries for 3D primitives"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "serve",
			Usage: "start the HTTP query API",
			Description: `
Serve the shape queries as JSON endpoints under /api:

  POST /api/contains  {"type", "data", "point"}
  POST /api/center    {"type", "data"}
  POST /api/bounds    {"type", "data"}
  GET  /api/types`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "addr, a",
					Value: ":8080",
					Usage: "listen address",
				},
				cli.BoolFlag{
					Name:  "trace-requests",
					Usage: "log every query at debug level",
				},
				cli.StringSliceFlag{
					Name:  "allowed-origin",
					Value: &cli.StringSlice{"*"},
					Usage: "CORS origin allowed to call the API",
				},
			},
			Action: serve,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
