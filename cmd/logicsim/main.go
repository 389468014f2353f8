// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command logicsim evaluates logic circuits stored as YAML files.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/db47h/logicsim"
)

var (
	circuitPath string
	libraryPath string
	toggles     []int
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "logicsim",
	Short: "Steady-state evaluator for digital logic circuits",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate a circuit and print its output gate values",
	Run: func(cmd *cobra.Command, args []string) {
		c, lib := load()
		for _, id := range toggles {
			var err error
			if c, err = sim.ToggleInput(c, id); err != nil {
				logrus.Fatalf("toggle: %v", err)
			}
		}
		res, st := sim.EvaluateStats(c, lib)
		if !st.Converged {
			logrus.Warnf("circuit did not converge (rounds=%d passes=%d)", st.Rounds, st.Passes)
		}
		logrus.Debugf("evaluation: rounds=%d passes=%d inert=%d", st.Rounds, st.Passes, st.Inert)
		for _, id := range sim.OutputIDs(res) {
			fmt.Printf("%d: %s\n", id, bit(res.Gate(id).Value))
		}
	},
}

var truthCmd = &cobra.Command{
	Use:   "truth",
	Short: "Print the truth table of a circuit",
	Run: func(cmd *cobra.Command, args []string) {
		c, lib := load()
		rows, err := sim.TruthTable(c, lib)
		if err != nil {
			logrus.Fatalf("truth table: %v", err)
		}
		for _, r := range rows {
			fmt.Printf("%s | %s\n", bits(r.Inputs), bits(r.Outputs))
		}
	},
}

func load() (sim.Circuit, *sim.Library) {
	f, err := os.Open(circuitPath)
	if err != nil {
		logrus.Fatalf("open circuit: %v", err)
	}
	defer f.Close()
	c, err := sim.DecodeCircuit(f)
	if err != nil {
		logrus.Fatalf("read circuit: %v", err)
	}
	lib := sim.NewLibrary()
	if libraryPath != "" {
		lf, err := os.Open(libraryPath)
		if err != nil {
			logrus.Fatalf("open library: %v", err)
		}
		defer lf.Close()
		if lib, err = sim.DecodeLibrary(lf); err != nil {
			logrus.Fatalf("read library: %v", err)
		}
	}
	return c, lib
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func bits(vs []bool) string {
	var b strings.Builder
	for _, v := range vs {
		b.WriteString(bit(v))
	}
	return b.String()
}

func main() {
	rootCmd.PersistentFlags().StringVar(&circuitPath, "circuit", "", "Path to the circuit YAML file")
	rootCmd.PersistentFlags().StringVar(&libraryPath, "library", "", "Path to the template library YAML file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log verbosity level")
	runCmd.Flags().IntSliceVar(&toggles, "toggle", nil, "Input gate ids to toggle before evaluating")
	rootCmd.MarkPersistentFlagRequired("circuit")
	rootCmd.AddCommand(runCmd, truthCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
