package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/gravitas-games/slotgrid/internal/config"
	"github.com/gravitas-games/slotgrid/internal/inventory"
	"github.com/gravitas-games/slotgrid/internal/logging"
	"github.com/gravitas-games/slotgrid/internal/scenario"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "slotgrid: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "slotgrid",
		Usage: "grid inventory playground",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to YAML config (falls back to $" + config.EnvPath + ")",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the final grid as JSON",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "add 15 and 89 apples and 53 bread, printing the grid before and after",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					env, err := setup(cmd)
					if err != nil {
						return err
					}
					defer func() { _ = env.logger.Sync() }()
					return runDemo(env, out, cmd.Bool("json"))
				},
			},
			{
				Name:      "run",
				Usage:     "run a YAML scenario",
				ArgsUsage: "<scenario.yaml>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path := cmd.Args().First()
					if path == "" {
						return errors.New("scenario path is required")
					}
					env, err := setup(cmd)
					if err != nil {
						return err
					}
					defer func() { _ = env.logger.Sync() }()
					return runScenario(ctx, env, out, path, cmd.Bool("json"))
				},
			},
		},
	}
}

type environment struct {
	svc    *inventory.Service
	logger *zap.Logger
}

func setup(cmd *cli.Command) (*environment, error) {
	cfg, err := config.Resolve(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	invCfg, err := cfg.Inventory.ToInventory()
	if err != nil {
		return nil, err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	svc, err := inventory.NewService(inventory.NewData(invCfg), invCfg,
		inventory.WithLogger(logger),
		inventory.WithRegistry(reg),
	)
	if err != nil {
		return nil, err
	}
	logEvents(svc, logger)
	logger.Info("inventory ready",
		zap.Int("width", invCfg.Width),
		zap.Int("height", invCfg.Height),
		zap.Int("slot_capacity", invCfg.SlotCapacity))
	return &environment{svc: svc, logger: logger}, nil
}

func logEvents(svc *inventory.Service, logger *zap.Logger) {
	reg := svc.Registry()
	handler := func(e inventory.Event) {
		fields := []zap.Field{
			zap.String("event", e.Kind.String()),
			zap.String("item", reg.Name(e.Item)),
			zap.Int("amount", e.Amount),
		}
		if e.Position != nil {
			fields = append(fields, zap.Int("x", e.Position.X), zap.Int("y", e.Position.Y))
		}
		logger.Info("inventory event", fields...)
	}
	svc.OnItemsAdded(handler)
	svc.OnItemsRemoved(handler)
	svc.OnItemsDropped(handler)
}

func runDemo(env *environment, out io.Writer, asJSON bool) error {
	if err := env.svc.Print(out); err != nil {
		return err
	}
	adds := []struct {
		item   inventory.ItemType
		amount int
	}{
		{inventory.Apple, 15},
		{inventory.Apple, 89},
		{inventory.Bread, 53},
	}
	for _, a := range adds {
		if _, err := env.svc.Add(a.item, a.amount); err != nil {
			return err
		}
	}
	fmt.Fprintln(out)
	if err := env.svc.Print(out); err != nil {
		return err
	}
	return writeSnapshot(env.svc, out, asJSON)
}

func runScenario(ctx context.Context, env *environment, out io.Writer, path string, asJSON bool) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	report, err := scenario.NewRunner(env.svc, out, env.logger).Run(ctx, sc)
	if report != nil {
		for _, res := range report.Results {
			status := "ok"
			if !res.OK {
				status = "no"
			}
			line := fmt.Sprintf("%3d  %-4s %s", res.Index, status, res.Step)
			if res.Dropped > 0 {
				line += fmt.Sprintf(" (dropped %d)", res.Dropped)
			}
			if res.Error != "" {
				line += " (" + res.Error + ")"
			}
			fmt.Fprintln(out, line)
		}
	}
	if err != nil {
		return err
	}
	return writeSnapshot(env.svc, out, asJSON)
}

func writeSnapshot(svc *inventory.Service, out io.Writer, asJSON bool) error {
	if !asJSON {
		return nil
	}
	data, err := svc.MarshalSnapshot()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
