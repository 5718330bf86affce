package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"svw.info/hanoi/internal/adapters/cli"
	"svw.info/hanoi/internal/generator"
	"svw.info/hanoi/internal/hint"
	"svw.info/hanoi/internal/infrastructure/storage"
	"svw.info/hanoi/internal/ports"
	"svw.info/hanoi/internal/solver"
	"svw.info/hanoi/internal/usecase"
	"svw.info/hanoi/internal/validator"
)

var log = logrus.New()

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	disks := flag.Int("disks", envInt("HANOI_DISKS", 3), "number of disks")
	persist := flag.String("persist-path", envDefault("HANOI_DATA", "./data"), "save directory")
	solverKind := flag.String("solver", envDefault("HANOI_SOLVER", "greedy"), "solver to use: greedy|bfs")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if *disks <= 0 {
		log.Fatal("need a positive number of disks")
	}

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "bfs", "shortest":
		s = solver.NewBFSSolver()
	default:
		s = solver.NewGreedySolver()
	}
	log.WithFields(logrus.Fields{"disks": *disks, "solver": *solverKind}).Debug("starting game")

	uc := usecase.NewService(
		s,
		hint.NewNext(),
		generator.NewRandomScrambler(),
		validator.New(),
		storage.NewFS(*persist),
	)

	repl := cli.New(uc, os.Stdin, os.Stdout)
	if err := repl.Run(context.Background(), *disks); err != nil {
		log.WithError(err).Fatal("game loop failed")
	}
}
