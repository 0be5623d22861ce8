// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/GermanBionicSystems/mcp9808"
	"github.com/GermanBionicSystems/mcp9808/mcp9808reg"
	"github.com/maruel/ansi256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"periph.io/x/conn/v3/physic"
)

var (
	colorNormal   = color.NRGBA{0x00, 0xc0, 0x00, 0xff}
	colorBelow    = color.NRGBA{0x00, 0x60, 0xff, 0xff}
	colorAbove    = color.NRGBA{0xff, 0x20, 0x00, 0xff}
	colorCritical = color.NRGBA{0xff, 0x00, 0xff, 0xff}
)

// sensor is the part of *mcp9808.Dev used to take a sample.
type sensor interface {
	ReadResolution() (mcp9808reg.ResolutionVal, error)
	ReadAmbient() (mcp9808reg.Ambient, error)
}

// sample is one ambient register reading, decoded at the resolution the
// device reported just before it.
type sample struct {
	temperature physic.Temperature
	celsius     float64
	below       bool
	above       bool
	critical    bool
}

func takeSample(s sensor) (sample, error) {
	res, err := s.ReadResolution()
	if err != nil {
		return sample{}, err
	}
	a, err := s.ReadAmbient()
	if err != nil {
		return sample{}, err
	}
	return sample{
		temperature: a.Temperature(res),
		celsius:     a.Celsius(res),
		below:       a.BelowLower(),
		above:       a.AboveUpper(),
		critical:    a.AboveCritical(),
	}, nil
}

func (s *sample) color() color.NRGBA {
	switch {
	case s.critical:
		return colorCritical
	case s.above:
		return colorAbove
	case s.below:
		return colorBelow
	default:
		return colorNormal
	}
}

func (s *sample) print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\033[0m %s\n", ansi256.Default.Block(s.color()), s.temperature)
	return err
}

// reading holds the last sample for the Prometheus collectors.
type reading struct {
	mu   sync.Mutex
	last sample
}

func (r *reading) set(s sample) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = s
}

func (r *reading) get() sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func boolGauge(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

// registerMetrics exports the last sample of r to reg.
func registerMetrics(reg prometheus.Registerer, r *reading, addr mcp9808.SlaveAddress) {
	f := promauto.With(reg)
	labels := prometheus.Labels{"address": addr.String()}
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   "mcp9808",
		Name:        "temperature_celsius",
		Help:        "Ambient temperature (°C)",
		ConstLabels: labels,
	}, func() float64 {
		return r.get().celsius
	})
	for _, limit := range []struct {
		name string
		get  func(s sample) bool
	}{
		{"lower", func(s sample) bool { return s.below }},
		{"upper", func(s sample) bool { return s.above }},
		{"critical", func(s sample) bool { return s.critical }},
	} {
		limit := limit
		f.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "mcp9808",
			Name:        "alert",
			Help:        "Alert comparator flag of the last reading",
			ConstLabels: prometheus.Labels{"address": addr.String(), "limit": limit.name},
		}, func() float64 {
			return boolGauge(limit.get(r.get()))
		})
	}
}
