package ports

import "context"

// IOMode selects how a child process's standard streams are wired.
type IOMode int

const (
	// IOCapture reads the child's standard output line by line into the Line
	// sink. Standard input and error are connected to the null device so the
	// child can never block on a prompt.
	IOCapture IOMode = iota

	// IOCaptureTee captures standard output like IOCapture while mirroring
	// it to the parent's terminal, with standard input and error inherited
	// so the child can prompt the user.
	IOCaptureTee

	// IOInherit passes all three streams through untouched.
	IOInherit
)

// Command describes one child process invocation.
type Command struct {
	// Argv is the full argument vector; Argv[0] is the program.
	Argv []string

	// Mode selects the stream wiring.
	Mode IOMode

	// Line receives each complete line of captured standard output, without
	// its trailing newline. Lines split across output chunks are reassembled
	// before delivery. Ignored for IOInherit.
	Line func(string)
}

// Runner executes child processes.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the command and waits for it, returning the child's exit
	// status. A clean non-zero exit is reported through the exit code, not
	// through err; err means the child could not be started or its output
	// could not be read. The child is always reaped before Run returns.
	Run(ctx context.Context, cmd Command) (int, error)
}
