// Command daqmx-info prints the driver version, devices and saved objects
// of a local DAQmx installation or of a remote device server. With -read it
// also acquires a few samples from a voltage channel.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KevinKickass/daqmx"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/internal/config"
	"github.com/KevinKickass/daqmx/interpreter/remote"
)

func main() {
	target := flag.String("grpc", "", "device server address; empty uses the local driver")
	apiKey := flag.String("api-key", "", "device server API key")
	library := flag.String("library", "", "path of the DAQmx C library")
	read := flag.String("read", "", "physical channel to read, e.g. Dev1/ai0")
	samples := flag.Int("samples", 10, "samples to read with -read")
	flag.Parse()

	cfg, err := config.Init()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zcfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	daqmx.SetLogger(logger)

	if len(cfg.DotenvFiles) > 0 {
		logger.Info("Config loaded", zap.Strings("dotenv", cfg.DotenvFiles))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opt := daqmx.WithLibrary(daqmx.LibraryOptions{Path: *library})
	if *target != "" {
		conn, err := remote.Dial(ctx, *target)
		if err != nil {
			logger.Fatal("Failed to connect to device server", zap.String("target", *target), zap.Error(err))
		}
		defer conn.Close()
		opt = daqmx.WithGrpc(daqmx.GrpcSessionOptions{Conn: conn, APIKey: *apiKey})
	}

	if err := run(ctx, opt, *read, *samples); err != nil {
		logger.Error("daqmx-info failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, opt daqmx.Option, channel string, samples int) error {
	sys, err := daqmx.LocalSystem(opt)
	if err != nil {
		return err
	}

	version, err := sys.DriverVersion()
	if err != nil {
		return err
	}
	fmt.Printf("driver %s\n", version)

	devs, err := sys.Devices()
	if err != nil {
		return err
	}
	for _, d := range devs {
		product, err := d.ProductType()
		if err != nil {
			return err
		}
		fmt.Printf("device %s (%s)\n", d.Name(), product)
	}

	tasks, err := sys.Tasks()
	if err != nil {
		return err
	}
	for _, t := range tasks {
		fmt.Printf("task %s\n", t.Name())
	}
	scales, err := sys.Scales()
	if err != nil {
		return err
	}
	for _, s := range scales {
		fmt.Printf("scale %s\n", s.Name())
	}

	if channel == "" || ctx.Err() != nil {
		return ctx.Err()
	}
	return acquire(opt, channel, samples)
}

func acquire(opt daqmx.Option, channel string, samples int) error {
	task, err := daqmx.NewTask("", opt)
	if err != nil {
		return err
	}
	defer task.Close()

	if _, err := task.AIChannels.AddVoltageChan(daqmx.AIVoltageChan{
		PhysicalChannel: channel,
		TerminalConfig:  constants.TermDefault,
		Min:             -10,
		Max:             10,
		Units:           constants.Volts,
	}); err != nil {
		return err
	}
	data, err := task.Read(samples, 10)
	if err != nil {
		return err
	}
	for i, name := range data.Channels {
		fmt.Printf("%s %v\n", name, daqmx.PerChannel(data, data.Float64)[i])
	}
	return nil
}
