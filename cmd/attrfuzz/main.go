// Command attrfuzz generates randomized attribute names and values and checks
// the resolution and value codec properties of webattr against them.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/adammathes/webattr/pkg/webns"
)

// Case describes one generated input.
type Case struct {
	ID        int    `json:"id"`
	Probe     string `json:"probe"`
	Namespace string `json:"namespace"`
	Input     string `json:"input"`
	Failure   string `json:"failure,omitempty"`
}

// Manifest is written at the end of a run.
type Manifest struct {
	Seed     int64          `json:"seed"`
	Count    int            `json:"count"`
	ByProbe  map[string]int `json:"by_probe"`
	Failures []Case         `json:"failures"`
}

var log = logrus.WithField("subsys", "attrfuzz")

// pickProbe makes a weighted random selection.
func pickProbe(rng *rand.Rand) probe {
	totalWeight := 0
	for _, p := range allProbes {
		totalWeight += p.weight
	}
	pick := rng.Intn(totalWeight)
	cumulative := 0
	for _, p := range allProbes {
		cumulative += p.weight
		if pick < cumulative {
			return p
		}
	}
	return allProbes[len(allProbes)-1]
}

// generate runs count cases drawn from seed over the given namespaces.
func generate(seed int64, count int, schemas []webns.Schema) *Manifest {
	rng := rand.New(rand.NewSource(seed))
	m := &Manifest{
		Seed:     seed,
		Count:    count,
		ByProbe:  map[string]int{},
		Failures: []Case{},
	}
	for i := 1; i <= count; i++ {
		ns := schemas[rng.Intn(len(schemas))].Namespace()
		p := pickProbe(rng)
		input, failure := p.run(ns, rng)
		m.ByProbe[p.name]++

		c := Case{ID: i, Probe: p.name, Namespace: ns.Name(), Input: input, Failure: failure}
		entry := log.WithFields(logrus.Fields{"id": c.ID, "probe": c.Probe, "ns": c.Namespace, "input": c.Input})
		if failure != "" {
			entry.WithField("failure", failure).Warn("Property violated")
			m.Failures = append(m.Failures, c)
			continue
		}
		entry.Debug("Property holds")
	}
	return m
}

func main() {
	var (
		count    = flag.IntP("count", "n", 1000, "Number of cases to generate")
		seed     = flag.Int64("seed", 42, "Random seed")
		out      = flag.StringP("out", "o", "attrfuzz-manifest.json", "Manifest path")
		nsName   = flag.String("ns", "", "Restrict to one namespace: "+webns.SchemaNames)
		debug    = flag.BoolP("debug", "D", false, "Log every case")
		listOnly = flag.Bool("list-probes", false, "List the probes and exit")
	)
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if *listOnly {
		for _, p := range allProbes {
			fmt.Printf("%-20s %s\n", p.name, p.description)
		}
		return
	}

	schemas := webns.Schemas()
	if *nsName != "" {
		s, err := webns.ParseSchema(*nsName)
		if err != nil {
			log.WithError(err).Error("Invalid namespace")
			os.Exit(2)
		}
		schemas = []webns.Schema{s}
	}
	if *count < 1 {
		log.WithField("count", *count).Error("Count must be positive")
		os.Exit(2)
	}

	m := generate(*seed, *count, schemas)

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		log.WithError(err).Error("Encoding manifest")
		os.Exit(2)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.WithError(err).Error("Writing manifest")
		os.Exit(2)
	}

	log.WithFields(logrus.Fields{
		"count":    m.Count,
		"failures": len(m.Failures),
		"manifest": *out,
	}).Info("Done")
	if len(m.Failures) > 0 {
		os.Exit(1)
	}
}
