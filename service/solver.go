package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	dmn "github.com/beka-birhanu/vinom-maze-solver/domain"
	"github.com/beka-birhanu/vinom-maze-solver/maze"
	"github.com/beka-birhanu/vinom-maze-solver/pathfinding"
	"github.com/beka-birhanu/vinom-maze-solver/service/i"
	"github.com/google/uuid"
)

const (
	defaultWorkers = 1
)

var (
	ErrNoExit      = errors.New("maze is missing the exit")
	ErrUnreachable = errors.New("exit is unreachable")
	ErrBadFormat   = errors.New("bad maze format")
)

// Options configures a Solver. Cache and Leaderboard are optional.
type Options struct {
	Workers     int
	Cache       i.SolutionCache
	Leaderboard i.Leaderboard
	Logger      i.Logger
}

// Solver picks the nearest exit of a maze and keeps solutions in the
// optional cache and leaderboard.
type Solver struct {
	opts *Options
}

var _ i.MazeSolver = &Solver{}

// NewSolver creates a Solver, filling in defaults for missing options.
func NewSolver(opts *Options) (*Solver, error) {
	if opts == nil {
		opts = &Options{Workers: defaultWorkers}
	}

	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}

	if opts.Logger == nil {
		opts.Logger = discardLogger{}
	}

	return &Solver{opts: opts}, nil
}

// exitSearch is the outcome of searching towards one exit.
type exitSearch struct {
	result *pathfinding.Result
	err    error
}

// NearestExit searches from the start to every exit and returns the shortest
// path found. When several exits tie, the one listed first wins.
func (s *Solver) NearestExit(ctx context.Context, m *maze.Maze) (*dmn.Solution, error) {
	if len(m.Exits) == 0 {
		return nil, ErrNoExit
	}

	searches, err := s.searchExits(ctx, m)
	if err != nil {
		return nil, err
	}

	best := -1
	expanded := 0
	for idx, search := range searches {
		if search.err != nil {
			if errors.Is(search.err, pathfinding.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("searching exit %s: %w", m.Exits[idx], search.err)
		}
		expanded += search.result.Expanded
		if best < 0 || len(search.result.Path) < len(searches[best].result.Path) {
			best = idx
		}
	}

	if best < 0 {
		return nil, ErrUnreachable
	}

	path := searches[best].result.Path
	return &dmn.Solution{
		Name:     m.Name,
		Exit:     m.Exits[best],
		Path:     path,
		Moves:    path.Moves(),
		Expanded: expanded,
	}, nil
}

// searchExits runs one search per exit and returns the outcomes in exit order.
func (s *Solver) searchExits(ctx context.Context, m *maze.Maze) ([]exitSearch, error) {
	searches := make([]exitSearch, len(m.Exits))
	run := func(idx int) {
		res, err := pathfinding.Search(m.Grid, m.Start, m.Exits[idx])
		searches[idx] = exitSearch{result: res, err: err}
	}

	if s.opts.Workers == 1 || len(m.Exits) == 1 {
		for idx := range m.Exits {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			run(idx)
		}
		return searches, nil
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(s.opts.Workers, len(m.Exits)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				run(idx)
			}
		}()
	}

	var err error
	for idx := range m.Exits {
		if err = ctx.Err(); err != nil {
			break
		}
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return searches, nil
}

// Solve parses text and returns its nearest-exit solution, consulting the
// cache first and recording the result on the leaderboard. Cache and
// leaderboard failures are logged and do not fail the solve.
func (s *Solver) Solve(ctx context.Context, name, text string) (*dmn.Solution, error) {
	m, err := maze.Parse(name, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFormat, err)
	}

	key := Fingerprint(m)
	if s.opts.Cache != nil {
		unlock, err := s.opts.Cache.Lock(ctx, key)
		if err != nil {
			s.opts.Logger.Warning(fmt.Sprintf("Solving %q without cache lock: %s", name, err))
		} else {
			defer unlock()
		}

		cached, found, err := s.opts.Cache.Get(ctx, key)
		if err != nil {
			s.opts.Logger.Warning(fmt.Sprintf("Reading cached solution for %q: %s", name, err))
		} else if found {
			s.opts.Logger.Info(fmt.Sprintf("Cache hit for maze %q", name))
			cached.ID = uuid.New()
			cached.Name = name
			cached.Cached = true
			return cached, nil
		}
	}

	solution, err := s.NearestExit(ctx, m)
	if err != nil {
		s.opts.Logger.Info(fmt.Sprintf("Maze %q not solved: %s", name, err))
		return nil, err
	}
	solution.ID = uuid.New()
	s.opts.Logger.Info(fmt.Sprintf("Solved maze %q: exit=%s moves=%d expanded=%d", name, solution.Exit, solution.Moves, solution.Expanded))

	if s.opts.Cache != nil {
		if err := s.opts.Cache.Put(ctx, key, solution); err != nil {
			s.opts.Logger.Warning(fmt.Sprintf("Caching solution for %q: %s", name, err))
		}
	}

	if s.opts.Leaderboard != nil && name != "" {
		if err := s.opts.Leaderboard.Record(ctx, name, solution.Moves); err != nil {
			s.opts.Logger.Warning(fmt.Sprintf("Recording %q on leaderboard: %s", name, err))
		}
	}

	return solution, nil
}

// Fingerprint identifies a maze by the SHA-256 of its normalized text.
func Fingerprint(m *maze.Maze) string {
	sum := sha256.Sum256([]byte(m.String()))
	return hex.EncodeToString(sum[:])
}

type discardLogger struct{}

func (discardLogger) Info(string)    {}
func (discardLogger) Warning(string) {}
func (discardLogger) Error(string)   {}
