// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// mcp9808 reads the ambient temperature of an MCP9808 sensor.
//
// It can program the resolution and the alert limits, prints each reading
// with a colored block reflecting the alert flags and optionally exports the
// readings to Prometheus.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	prefixed "github.com/BertoldVdb/logrus-prefixed-formatter"
	"github.com/GermanBionicSystems/mcp9808"
	"github.com/GermanBionicSystems/mcp9808/gobotbus"
	"github.com/GermanBionicSystems/mcp9808/mcp9808reg"
	"github.com/mattn/go-colorable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

func newLogger(level logrus.Level) *logrus.Entry {
	logrus.ErrorKey = "$error"
	logger := logrus.New()
	logger.SetLevel(level)
	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	customFormatter.PrefixPadding = 20
	customFormatter.SpacePadding = 50
	logger.SetFormatter(customFormatter)
	return logrus.NewEntry(logger).WithField("prefix", "mcp9808")
}

func openBus(name, gobotPath string) (i2c.BusCloser, error) {
	if gobotPath != "" {
		b, err := gobotbus.Open(gobotPath)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	return i2creg.Open(name)
}

// keepResolution is the -resolution value that leaves the device setting
// untouched.
const keepResolution = -1

// maxFailures is the number of consecutive failed reads after which run
// gives up.
const maxFailures = 10

// validate checks the flags that do not need the bus and returns the sensor
// address. limits is the number of alert limit flags set on the command
// line.
func validate(addr uint, res int, limits int) (mcp9808.SlaveAddress, error) {
	if addr > 0x7f {
		return mcp9808.SlaveAddress{}, fmt.Errorf("invalid -addr %#x", addr)
	}
	sa, err := mcp9808.ParseAddress(uint16(addr))
	if err != nil {
		return mcp9808.SlaveAddress{}, err
	}
	if res < keepResolution || res > int(mcp9808reg.Res0_0625C) {
		return mcp9808.SlaveAddress{}, fmt.Errorf("invalid -resolution %d", res)
	}
	if limits != 0 && limits != 3 {
		return mcp9808.SlaveAddress{}, errors.New("-lower, -upper and -critical must be specified together")
	}
	return sa, nil
}

// countLimits returns how many of -lower, -upper and -critical were set.
func countLimits(fs *flag.FlagSet) int {
	limits := 0
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lower", "upper", "critical":
			limits++
		}
	})
	return limits
}

// run prints n successful samples, or samples until ctx is done when n is
// 0. A new sample is taken on each tick. It fails after maxFailures
// consecutive failed reads.
func run(ctx context.Context, s sensor, n int, tick <-chan time.Time, w io.Writer, last *reading, log *logrus.Entry) error {
	failures := 0
	for done := 0; n == 0 || done < n; {
		if done != 0 || failures != 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		}
		r, err := takeSample(s)
		if err != nil {
			failures++
			log.WithError(err).Warn("read failed")
			if failures >= maxFailures {
				return fmt.Errorf("%d consecutive reads failed: %w", failures, err)
			}
			continue
		}
		failures = 0
		done++
		last.set(r)
		if err := r.print(w); err != nil {
			return err
		}
	}
	return nil
}

func mainImpl() error {
	busName := flag.String("bus", "", "I²C bus to use")
	gobotPath := flag.String("gobot", "", "access the bus through gobot sysfs on this device instead, e.g. /dev/i2c-1")
	addr := flag.Uint("addr", 0x18, "I²C address, 0x18 to 0x1f depending on the A2, A1 and A0 pins")
	res := flag.Int("resolution", keepResolution, "resolution: 0=0.5°C 1=0.25°C 2=0.125°C 3=0.0625°C, -1 keeps the current one")
	var lower, upper, critical physic.Temperature
	flag.Var(&lower, "lower", "T_LOWER alert limit, e.g. 10C; requires -upper and -critical")
	flag.Var(&upper, "upper", "T_UPPER alert limit, e.g. 30C")
	flag.Var(&critical, "critical", "T_CRIT alert limit, e.g. 45C")
	interval := flag.Duration("interval", time.Second, "time between readings")
	count := flag.Int("n", 0, "number of readings, 0 reads until interrupted")
	promaddr := flag.String("prometheus", "", "serve Prometheus metrics on this address, e.g. :9121")
	shutdown := flag.Bool("shutdown", false, "put the sensor in shutdown mode on exit")
	loglevel := flag.Int("loglevel", int(logrus.InfoLevel), "The loglevel to use. Valid values are from 0 to 6. Higher values output more information")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if *count < 0 {
		return fmt.Errorf("invalid -n %d", *count)
	}

	log := newLogger(logrus.Level(*loglevel))

	limits := countLimits(flag.CommandLine)
	sa, err := validate(*addr, *res, limits)
	if err != nil {
		return err
	}

	bus, err := openBus(*busName, *gobotPath)
	if err != nil {
		return err
	}
	defer bus.Close()

	opts := mcp9808.DefaultOpts
	if *res != keepResolution {
		opts.Resolution = mcp9808.Resolution(mcp9808reg.ResolutionVal(*res))
	}
	dev, err := mcp9808.NewI2C(bus, sa, &opts)
	if err != nil {
		return err
	}
	dev.EnableDebug(log.Debugf)
	if r, err := dev.ReadResolution(); err == nil {
		log.WithField("resolution", r).Infof("opened %s", dev)
	}
	if *shutdown {
		defer func() {
			if err := dev.Shutdown(); err != nil {
				log.WithError(err).Error("shutdown failed")
			}
		}()
	}

	if limits == 3 {
		if err := dev.SetAlertLimits(lower, upper, critical); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"lower": lower, "upper": upper, "critical": critical}).Info("alert limits set")
	}

	last := &reading{}
	if *promaddr != "" {
		registerMetrics(prometheus.DefaultRegisterer, last, sa)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.WithError(http.ListenAndServe(*promaddr, nil)).Error("prometheus exporter stopped")
		}()
		log.Infof("serving metrics on %s", *promaddr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	t := time.NewTicker(*interval)
	defer t.Stop()
	return run(ctx, dev, *count, t.C, colorable.NewColorableStdout(), last, log)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "mcp9808: %s.\n", err)
		os.Exit(1)
	}
}
