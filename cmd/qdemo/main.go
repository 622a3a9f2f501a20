// Command qdemo runs the classic qlath demonstrations: an identity check, a
// quantum coin flip, Deutsch's algorithm and GHZ-state sampling.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/qlath/algorithms"
	"github.com/katalvlaran/qlath/circuit"
	"github.com/katalvlaran/qlath/computer"
	"github.com/katalvlaran/qlath/gates"
	"github.com/katalvlaran/qlath/internal/logger"
)

func main() {
	cfg, err := Load(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "qdemo:", err)
		os.Exit(2)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.Pretty}).
		With().Str("run", uuid.New().String()).Logger()

	if err = run(cfg, log, os.Stdout); err != nil {
		log.Error().Err(err).Msg("demo failed")
		os.Exit(1)
	}
}

// run executes every demonstration and prints results to out.
func run(cfg *Config, log zerolog.Logger, out io.Writer) error {
	src := computer.NewSeededSource(cfg.Seed)
	opts := []computer.Option{computer.WithRandomSource(src), computer.WithLogger(log)}

	log.Info().Int("shots", cfg.Shots).Int64("seed", cfg.Seed).Msg("starting")

	// identity
	qc, err := computer.New(3, opts...)
	if err != nil {
		return err
	}
	id, err := gates.Identity(3)
	if err != nil {
		return err
	}
	if err = qc.Initialize(5); err != nil {
		return err
	}
	if err = qc.Apply(id); err != nil {
		return err
	}
	v, err := qc.Collapse()
	if err != nil {
		return err
	}
	if v != 5 {
		return fmt.Errorf("identity: collapsed to %d, want 5", v)
	}
	fmt.Fprintf(out, "identity:  |101⟩ → %s\n", circuit.Bitstring(v, 3))

	// coin flip
	coin, err := algorithms.CoinFlip(opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "coin flip: %s\n", coin)

	// Deutsch
	for _, d := range []struct {
		name string
		f    algorithms.Oracle
	}{
		{"f(x)=1", algorithms.ConstantOracle(1)},
		{"f(x)=x", algorithms.Identity},
	} {
		qc, err = computer.New(2, opts...)
		if err != nil {
			return err
		}
		verdict, err := algorithms.Deutsch(qc, d.f)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "deutsch:   %s is %s\n", d.name, verdict)
	}

	// GHZ
	ghz, err := algorithms.GHZ(cfg.Qubits, cfg.Phase)
	if err != nil {
		return err
	}
	counts, err := ghz.Sample(cfg.Shots, computer.WithRandomSource(src))
	if err != nil {
		return err
	}
	probs, err := ghz.Probabilities()
	if err != nil {
		return err
	}
	chi2, p, err := circuit.GoodnessOfFit(counts, probs)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "ghz(%d):    counts %v\n", cfg.Qubits, counts.Bitstrings(cfg.Qubits))
	log.Info().Float64("chi2", chi2).Float64("p", p).Msg("ghz goodness of fit")

	return nil
}
