package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipeloop/looptrace"
)

const stdinName = "-"

// result pairs an input name with what was computed from it.
type result[T any] struct {
	Input string
	Value T
}

// stdinOnce reads standard input at most once, however many "-" arguments
// are given.
type stdinOnce struct {
	r    io.Reader
	once sync.Once
	buf  []byte
	err  error
}

func (s *stdinOnce) read() ([]byte, error) {
	s.once.Do(func() {
		s.buf, s.err = io.ReadAll(s.r)
	})
	return s.buf, s.err
}

// traceOptions maps the configuration onto tracer options.
func (a *app) traceOptions() []looptrace.Option {
	var opts []looptrace.Option
	if a.config.GetBool(verifyConfigKey) {
		opts = append(opts, looptrace.WithVerify())
	}
	return opts
}

// runAll applies fn to every input, at most run.parallel at a time, and
// returns the results in argument order. The first failure cancels the
// remaining inputs and is returned with the input name attached.
func runAll[T any](ctx context.Context, a *app, args []string, stdin io.Reader, fn func(buf []byte) (T, error)) ([]result[T], error) {
	if len(args) == 0 {
		args = []string{stdinName}
	}
	limit := a.config.GetInt(parallelConfigKey)
	if limit < 1 {
		limit = 1
	}

	in := &stdinOnce{r: stdin}
	results := make([]result[T], len(args))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	for i, name := range args {
		i, name := i, name
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			var (
				buf []byte
				err error
			)
			if name == stdinName {
				buf, err = in.read()
			} else {
				buf, err = os.ReadFile(name)
			}
			if err != nil {
				a.logger.Error("read input", "input", name, "error", err)
				return fmt.Errorf("%s: %w", name, err)
			}
			a.logger.Debug("read input", "input", name, "bytes", len(buf))

			v, err := fn(buf)
			if err != nil {
				a.logger.Error("analyze input", "input", name, "error", err)
				return fmt.Errorf("%s: %w", name, err)
			}
			a.logger.Info("analyzed input", "input", name)

			results[i] = result[T]{Input: name, Value: v}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
