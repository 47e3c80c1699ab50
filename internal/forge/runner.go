// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package forge

import (
	"bytes"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/samthorne/draftforge/internal/config"
	"github.com/samthorne/draftforge/internal/errors"
	"github.com/samthorne/draftforge/internal/logger"
)

// gamesPerRun pins every invocation to a single game. Batching more games
// into one run is out of scope.
const gamesPerRun = "1"

// GameRunner executes the Forge jar synchronously, one game per call. A call
// blocks until the child exits; there is no timeout, retry, or cancellation
// on the launch itself.
type GameRunner struct {
	JavaBin    string
	Dir        string   // Forge install dir, used as the child's working directory
	Jar        string   // archive filename resolved relative to Dir
	Candidates []string // secondary decks drawn from when Match.Opponent is empty
}

// NewRunner locates a Forge installation and returns a runner for it.
// An explicit DRAFTFORGE_FORGE_DIR is trusted as-is; otherwise the current
// directory, ~/forge, and /opt/forge are probed for the archive.
func NewRunner(cfg config.Config) (*GameRunner, error) {
	r := &GameRunner{
		JavaBin:    cfg.JavaBin,
		Jar:        cfg.ForgeJar,
		Candidates: cfg.Opponents,
	}

	switch {
	case cfg.ForgeDir != "":
		r.Dir = cfg.ForgeDir
	default:
		dir, ok := probeForgeDir(cfg.ForgeJar)
		if !ok {
			return nil, errors.WrapForgeNotFound("set DRAFTFORGE_FORGE_DIR to your Forge install")
		}
		r.Dir = dir
	}

	if v, err := CheckJar(r.Jar); err != nil {
		logger.Logger.Warn("forge archive version check failed", "jar", r.Jar, "error", err)
	} else {
		logger.Logger.Debug("forge archive detected", "version", v.String())
	}

	return r, nil
}

func probeForgeDir(jar string) (string, bool) {
	if cwd, err := os.Getwd(); err == nil {
		if _, err := os.Stat(filepath.Join(cwd, jar)); err == nil {
			return cwd, true
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		local := filepath.Join(home, "forge")
		if _, err := os.Stat(filepath.Join(local, jar)); err == nil {
			return local, true
		}
	}
	if _, err := os.Stat(filepath.Join("/opt/forge", jar)); err == nil {
		return "/opt/forge", true
	}
	return "", false
}

// Resolve fills an empty opponent from the candidate list, so callers can
// learn which deck plays before launching.
func (r *GameRunner) Resolve(m Match) (Match, error) {
	if m.Opponent != "" {
		return m, nil
	}
	opponent, err := r.pickOpponent()
	if err != nil {
		return m, err
	}
	m.Opponent = opponent
	return m, nil
}

// Run executes one simulated game and returns the captured streams. The
// child exiting non-zero is a hard failure: no output is returned.
func (r *GameRunner) Run(m Match) (*Output, error) {
	m, err := r.Resolve(m)
	if err != nil {
		return nil, err
	}

	inv := r.invocation(m.Deck, m.Opponent)
	logger.Logger.Debug("starting simulation", "binary", inv.Binary, "args", inv.Args, "dir", inv.Dir)

	cmd := exec.Command(inv.Binary, inv.Args...)
	cmd.Dir = inv.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Logger.Info("executing forge simulation", "deck", m.Deck, "opponent", m.Opponent)
	if err := cmd.Run(); err != nil {
		logger.Logger.Error("simulation failed", "error", err, "stderr", stderr.String())
		return nil, errors.WrapSimulationFailed(err, strings.TrimSpace(stderr.String()))
	}

	out := &Output{
		Stdout: normalizeNewlines(stdout.String()),
		Stderr: normalizeNewlines(stderr.String()),
	}
	logger.Logger.Debug("simulation completed", "stdout_size", len(out.Stdout), "stderr_size", len(out.Stderr))
	return out, nil
}

// invocation builds the argv for one game: java -jar <archive> sim -d <deck>
// <opponent> -n 1, rooted at the Forge install dir.
func (r *GameRunner) invocation(deck, opponent string) Invocation {
	return Invocation{
		Binary: r.JavaBin,
		Args:   []string{"-jar", r.Jar, "sim", "-d", deck, opponent, "-n", gamesPerRun},
		Dir:    r.Dir,
	}
}

// pickOpponent draws uniformly from the candidate list. A singleton list
// makes the choice deterministic.
func (r *GameRunner) pickOpponent() (string, error) {
	if len(r.Candidates) == 0 {
		return "", errors.ErrNoCandidates
	}
	return r.Candidates[rand.Intn(len(r.Candidates))], nil
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
