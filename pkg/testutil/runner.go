// Package testutil provides testing utilities
package testutil

import (
	"context"
	"sync"

	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/executor"
)

// FakeRunner is an executor.Runner that records commands instead of
// executing them. Failures can be scripted per call index or per
// binary name.
type FakeRunner struct {
	mu            sync.Mutex
	commands      []executor.Command
	failures      map[int]error
	errorOn       string
	errorToReturn error
}

// NewFakeRunner creates a new recording runner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		failures: make(map[int]error),
	}
}

// Run records the command and returns any scripted failure
func (r *FakeRunner) Run(_ context.Context, cmd executor.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := len(r.commands)
	r.commands = append(r.commands, cmd)

	if err, ok := r.failures[index]; ok {
		return err
	}
	if r.errorOn != "" && cmd.Name == r.errorOn {
		return r.errorToReturn
	}
	return nil
}

// FailAt makes the call with the given zero-based index fail
func (r *FakeRunner) FailAt(call int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[call] = err
}

// ErrorOn makes every invocation of the named binary fail
func (r *FakeRunner) ErrorOn(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errorOn = name
	r.errorToReturn = err
}

// Commands returns the recorded invocations in order
func (r *FakeRunner) Commands() []executor.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]executor.Command(nil), r.commands...)
}

// CallCount returns how many commands were run
func (r *FakeRunner) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

// ExitError fabricates the error the executor produces when a child
// process exits nonzero, for scripting failures in tests
func ExitError(name string, code int) error {
	return errors.Newf(errors.ErrCommandExit, "%s exited with status %d", name, code).
		WithDetail("exit_code", code)
}
