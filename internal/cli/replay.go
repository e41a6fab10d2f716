package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/stepwise/internal/presentation/tui"
	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/ports"
)

// ReplayOptions contains the configuration for the Replay command.
type ReplayOptions struct {
	Path      string
	Overrides Overrides
	Color     bool
}

// Replay runs the graph file and lets the user step through the result.
func Replay(ctx context.Context, eng ports.Engine, opts ReplayOptions, in io.Reader, out io.Writer) error {
	tr, err := execute(ctx, eng, opts.Path, opts.Overrides)
	if err != nil {
		return err
	}
	r := &Replayer{
		Input:  NewInterruptibleReader(in, ctx.Done()),
		Output: out,
		Player: tui.NewPlayer(out, tr.Graph, opts.Color),
	}
	return handleExecutionError(r.Run(tr.Steps))
}

// Replayer handles the interactive loop over recorded steps using provided IO.
type Replayer struct {
	Input  io.Reader
	Output io.Writer
	Player *tui.Player
}

const replayHelp = "[enter/n] next  [p] previous  [f] first  [l] last  [<number>] jump  [q] quit"

// Run shows steps[0] and then reads one command per line until quit or EOF.
func (r *Replayer) Run(steps []domain.Snapshot) error {
	if len(steps) == 0 {
		return domain.ErrEmptySequence
	}
	lineReader := bufio.NewReader(r.Input)

	fmt.Fprintln(r.Output, replayHelp)
	cur, shown := 0, -1
	for {
		if cur != shown {
			var prev *domain.Snapshot
			if cur > 0 {
				prev = &steps[cur-1]
			}
			r.Player.Print(cur, len(steps), prev, steps[cur])
			shown = cur
		}

		fmt.Fprint(r.Output, "> ")
		line, err := lineReader.ReadString('\n')
		if err != nil && line == "" {
			return err
		}

		next, quit, perr := parseCommand(line, cur, len(steps))
		switch {
		case quit:
			return nil
		case perr != nil:
			printSystemMessage(r.Output, "%v", perr)
		case next == cur:
			printSystemMessage(r.Output, "Already at step %d of %d.", cur+1, len(steps))
		default:
			cur = next
		}
		if err != nil {
			return err
		}
	}
}

// parseCommand interprets one replay command. cur and the returned index are 0-based;
// jump targets are 1-based as displayed.
func parseCommand(line string, cur, total int) (next int, quit bool, err error) {
	cmd := strings.ToLower(strings.TrimSpace(line))
	switch cmd {
	case "", "n", "next":
		return min(cur+1, total-1), false, nil
	case "p", "prev", "previous":
		return max(cur-1, 0), false, nil
	case "f", "first":
		return 0, false, nil
	case "l", "last":
		return total - 1, false, nil
	case "q", "quit", "exit":
		return cur, true, nil
	}

	n, convErr := strconv.Atoi(cmd)
	if convErr != nil {
		return cur, false, fmt.Errorf("unknown command %q (%s)", cmd, replayHelp)
	}
	if n < 1 || n > total {
		return cur, false, fmt.Errorf("step %d out of range [1,%d]", n, total)
	}
	return n - 1, false, nil
}
