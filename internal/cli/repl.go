// REPL support for interactive counting sessions.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/avannier/tilecalc/internal/orchestration"
	"github.com/avannier/tilecalc/internal/progress"
	"github.com/avannier/tilecalc/internal/tiling"
	"github.com/avannier/tilecalc/internal/ui"
)

// REPLConfig carries the settings an interactive session starts with.
type REPLConfig struct {
	// DefaultMethod is the counting method used for count commands.
	DefaultMethod string
	// Timeout is the maximum duration for each operation.
	Timeout time.Duration
	// WarnThreshold is the width above which show refuses to render every
	// tiling and asks for a single index instead.
	WarnThreshold int
}

// REPL represents an interactive tiling calculator session.
type REPL struct {
	config        REPLConfig
	factory       *tiling.Factory
	renderer      *tiling.Renderer
	currentMethod string
	in            io.Reader
	out           io.Writer
}

// NewREPL creates a new REPL instance bound to the given counter factory.
func NewREPL(factory *tiling.Factory, config REPLConfig) *REPL {
	currentMethod := config.DefaultMethod
	if _, err := factory.Get(currentMethod); err != nil {
		// Unknown, empty, or "all": fall back to the first registered method.
		if names := factory.List(); len(names) > 0 {
			currentMethod = names[0]
		}
	}

	return &REPL{
		config:        config,
		factory:       factory,
		renderer:      tiling.NewRenderer(),
		currentMethod: currentMethod,
		in:            os.Stdin,
		out:           os.Stdout,
	}
}

// SetInput replaces the reader commands are read from. Tests feed scripted
// sessions through it.
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput redirects session output.
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// errorf prints one red error line to the session output.
func (r *REPL) errorf(format string, args ...any) {
	fmt.Fprintln(r.out, ui.ColorRed()+fmt.Sprintf(format, args...)+ui.ColorReset())
}

// goodbye prints the sign-off line.
func (r *REPL) goodbye() {
	fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
}

// opContext bounds one command by the session timeout.
func (r *REPL) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.config.Timeout)
}

// Start runs the interactive session: read a line, dispatch it, repeat
// until an exit command or EOF.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	in := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"tile> "+ui.ColorReset())

		line, err := in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				r.goodbye()
				return
			}
			r.errorf("Read error: %v", err)
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !r.processCommand(line) {
			return
		}
	}
}

// printBanner draws the welcome box.
func (r *REPL) printBanner() {
	inner := "      2xN Floor Tiling Calculator - Interactive Mode      "
	bar := strings.Repeat("═", len([]rune(inner)))
	cyan, bold, reset := ui.ColorCyan(), ui.ColorBold(), ui.ColorReset()
	fmt.Fprintf(r.out, "\n%s╔%s╗%s\n", cyan, bar, reset)
	fmt.Fprintf(r.out, "%s║%s%s%s%s║%s\n", cyan, bold, inner, reset, cyan, reset)
	fmt.Fprintf(r.out, "%s╚%s╝%s\n\n", cyan, bar, reset)
}

// printHelp lists the commands the session understands.
func (r *REPL) printHelp() {
	item := func(usage, desc string) {
		fmt.Fprintf(r.out, "  %s%-12s%s - %s\n", ui.ColorYellow(), usage, ui.ColorReset(), desc)
	}
	fmt.Fprintln(r.out, ui.ColorBold()+"Available commands:"+ui.ColorReset())
	item("count <n>", "Count tilings of a 2xn floor")
	item("show <n> [k]", "Render all tilings of a 2xn floor, or only the k-th")
	item("verify <n>", "Cross-check the counting methods up to width n")
	item("methods", "List available counting methods")
	item("status", "Display current configuration")
	item("help", "Display this help")
	item("exit / quit", "Exit interactive mode")
	fmt.Fprintf(r.out, "A bare integer counts directly: typing %s10%s is the same as %scount 10%s.\n",
		ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand dispatches one input line. A false return ends the session.
func (r *REPL) processCommand(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}

	verb := strings.ToLower(parts[0])
	args := parts[1:]

	switch verb {
	case "count", "c":
		r.cmdCount(args)
	case "show", "s":
		r.cmdShow(args)
	case "verify", "v":
		r.cmdVerify(args)
	case "methods", "m", "list", "ls":
		r.cmdMethods()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		r.goodbye()
		return false
	default:
		// A bare integer is shorthand for count.
		if width, err := parseWidth(verb); err == nil {
			r.count(width)
		} else {
			r.errorf("Unknown command: %s", verb)
			fmt.Fprintf(r.out, "Type %shelp%s for the command list.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

// parseWidth parses a floor width argument. Widths are non-negative.
func parseWidth(arg string) (int, error) {
	width, err := strconv.Atoi(arg)
	if err != nil {
		return 0, err
	}
	if width < 0 {
		return 0, fmt.Errorf("width must be non-negative, got %d", width)
	}
	return width, nil
}

// widthArg extracts the leading width argument, printing usage or a
// diagnostic when it is missing or malformed.
func (r *REPL) widthArg(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		r.errorf("Usage: %s", usage)
		return 0, false
	}
	width, err := parseWidth(args[0])
	if err != nil {
		r.errorf("Invalid width: %s", args[0])
		return 0, false
	}
	return width, true
}

// cmdCount handles the "count" command.
func (r *REPL) cmdCount(args []string) {
	if width, ok := r.widthArg(args, "count <n>"); ok {
		r.count(width)
	}
}

// count runs a tiling count with the current method.
func (r *REPL) count(width int) {
	counter, err := r.factory.Get(r.currentMethod)
	if err != nil {
		r.errorf("Method not found: %s", r.currentMethod)
		return
	}

	ctx, cancel := r.opContext()
	defer cancel()

	fmt.Fprintf(r.out, "Counting tilings of a %s2x%d%s floor with %s%s%s...\n",
		ui.ColorMagenta(), width, ui.ColorReset(),
		ui.ColorCyan(), counter.Name(), ui.ColorReset())

	// Progress plumbing mirrors the orchestrator: a subject publishes to a
	// channel observer and DisplayProgress consumes the channel.
	updates := make(chan progress.ProgressUpdate, 10)
	subject := progress.NewProgressSubject()
	subject.Register(progress.NewChannelObserver(updates))

	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, updates, 1, r.out)

	start := time.Now()
	count, err := counter.Count(ctx, subject.Callback(0), width, tiling.Options{})
	duration := time.Since(start)
	close(updates)
	wg.Wait()

	if err != nil {
		r.errorf("Error: %v", err)
		return
	}

	fmt.Fprintln(r.out)
	DisplayCount(count, width, duration, true, r.out)
	fmt.Fprintln(r.out)
}

// cmdShow handles the "show" command.
func (r *REPL) cmdShow(args []string) {
	width, ok := r.widthArg(args, "show <n> [k]")
	if !ok {
		return
	}

	total, err := tiling.CountByProfile(width)
	if err != nil {
		r.errorf("Error: %v", err)
		return
	}

	if len(args) > 1 {
		k, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil || k < 1 {
			r.errorf("Invalid tiling index: %s", args[1])
			return
		}
		if big.NewInt(k).Cmp(total) > 0 {
			r.errorf("A 2x%d floor has only %s tilings.", width, total)
			return
		}
		r.showOne(width, k)
		return
	}

	if width > r.config.WarnThreshold {
		fmt.Fprintf(r.out, "A 2x%d floor has %s%s%s tilings; rendering them all would flood the terminal.\n",
			width, ui.ColorCyan(), total, ui.ColorReset())
		fmt.Fprintf(r.out, "Show a single one with: %sshow %d <k>%s\n", ui.ColorYellow(), width, ui.ColorReset())
		return
	}

	r.showAll(width, total)
}

// showAll renders every tiling of the given width in discovery order.
func (r *REPL) showAll(width int, total *big.Int) {
	e, err := tiling.NewEnumerator(width)
	if err != nil {
		r.errorf("Error: %v", err)
		return
	}

	ctx, cancel := r.opContext()
	defer cancel()

	fmt.Fprintf(r.out, "All tilings of a 2x%d floor (%s total):\n\n", width, total)
	index := 0
	err = e.Walk(ctx, func(t tiling.Tiling) error {
		index++
		fmt.Fprintf(r.out, "Tiling #%d:\n", index)
		if err := r.renderer.RenderTo(r.out, t); err != nil {
			return err
		}
		fmt.Fprintln(r.out)
		return nil
	})
	if err != nil {
		r.errorf("Error: %v", err)
	}
}

// showOne renders only the k-th tiling (1-based, discovery order).
func (r *REPL) showOne(width int, k int64) {
	e, err := tiling.NewEnumerator(width)
	if err != nil {
		r.errorf("Error: %v", err)
		return
	}

	ctx, cancel := r.opContext()
	defer cancel()

	var seen int64
	err = e.Walk(ctx, func(t tiling.Tiling) error {
		seen++
		if seen < k {
			return nil
		}
		fmt.Fprintf(r.out, "Tiling #%d of a 2x%d floor:\n", k, width)
		if err := r.renderer.RenderTo(r.out, t); err != nil {
			return err
		}
		fmt.Fprintln(r.out)
		return tiling.ErrStopWalk
	})
	if err != nil {
		r.errorf("Error: %v", err)
	}
}

// cmdVerify handles the "verify" command.
func (r *REPL) cmdVerify(args []string) {
	width, ok := r.widthArg(args, "verify <n>")
	if !ok {
		return
	}

	ctx, cancel := r.opContext()
	defer cancel()

	report, err := orchestration.VerifySequence(ctx, width)
	if err != nil {
		r.errorf("Verification failed: %v", err)
		return
	}
	PresentVerificationReport(report, r.out)
	fmt.Fprintln(r.out)
}

// cmdMethods lists available counting methods.
func (r *REPL) cmdMethods() {
	fmt.Fprintln(r.out, "\n"+ui.ColorBold()+"Available counting methods:"+ui.ColorReset())
	for _, name := range r.factory.List() {
		counter, err := r.factory.Get(name)
		if err != nil {
			continue
		}
		marker := "  "
		if name == r.currentMethod {
			marker = fmt.Sprintf("%s► %s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(r.out, "%s%s%-12s%s - %s\n", marker, ui.ColorYellow(), name, ui.ColorReset(), counter.Name())
	}
	fmt.Fprintln(r.out)
}

// cmdStatus prints the session settings.
func (r *REPL) cmdStatus() {
	row := func(label, value string) {
		fmt.Fprintf(r.out, "  %-15s %s%s%s\n", label, ui.ColorCyan(), value, ui.ColorReset())
	}
	fmt.Fprintln(r.out, "\n"+ui.ColorBold()+"Current configuration:"+ui.ColorReset())
	row("Method:", r.currentMethod)
	row("Timeout:", r.config.Timeout.String())
	row("Show threshold:", fmt.Sprintf("2x%d", r.config.WarnThreshold))
	fmt.Fprintln(r.out)
}
