// Package linear provides a synchronous, line-oriented renderer for piped
// output and CI environments.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/core/ports"
	"go.trai.ch/geocache/internal/ui/output"
	"go.trai.ch/geocache/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer by printing one status line per update.
type Renderer struct {
	out *termenv.Output

	mu      sync.Mutex
	ctx     context.Context
	stopped chan struct{}
	once    sync.Once
}

// NewRenderer creates a Renderer writing to w. A nil writer selects os.Stdout.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{
		out:     output.NewWithProfile(w, output.ColorProfileANSI),
		ctx:     context.Background(),
		stopped: make(chan struct{}),
	}
}

// Start records ctx; Wait returns once it is done.
func (r *Renderer) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctx = ctx
	return nil
}

// Stop releases Wait.
func (r *Renderer) Stop() error {
	r.once.Do(func() { close(r.stopped) })
	return nil
}

// Wait blocks until Stop is called or the context passed to Start is done.
func (r *Renderer) Wait() error {
	r.mu.Lock()
	ctx := r.ctx
	r.mu.Unlock()

	select {
	case <-ctx.Done():
	case <-r.stopped:
	}
	return nil
}

// OnUpdate prints a one-line summary of v.
func (r *Renderer) OnUpdate(v domain.View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.out, "%s %s  cell %s  %s %s (%d)  %s %s nearby\n",
		r.color(style.Player, style.Sky),
		v.Position,
		v.Cell,
		r.color(style.Coin, style.Gold),
		plural(len(v.Inventory), "coin"),
		v.InventoryTotal,
		r.color(style.Cache, style.Moss),
		plural(len(v.Caches), "cache"),
	)
}

// WriteStatus prints a full report of v: position, inventory, nearby caches
// and the undo state.
func (r *Renderer) WriteStatus(v domain.View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	label := func(s string) string {
		return r.out.String(fmt.Sprintf("%-10s", s)).Bold().String()
	}

	_, _ = fmt.Fprintf(r.out, "%s %s (cell %s)\n", label("Position"), v.Position, v.Cell)
	_, _ = fmt.Fprintf(r.out, "%s %s, value %d\n", label("Inventory"), plural(len(v.Inventory), "coin"), v.InventoryTotal)
	for _, coin := range v.Inventory {
		_, _ = fmt.Fprintf(r.out, "             %s %-12s %d\n", r.color(style.Coin, style.Gold), coin.ID, coin.Value)
	}

	_, _ = fmt.Fprintf(r.out, "%s %s within %s\n", label("Nearby"), plural(len(v.Caches), "cache"), plural(v.Radius, "cell"))
	for _, c := range v.Caches {
		if len(c.Coins) == 0 {
			_, _ = fmt.Fprintf(r.out, "             %s %-8s empty\n", r.color(style.EmptyCache, style.Slate), c.Cell)
			continue
		}
		_, _ = fmt.Fprintf(r.out, "             %s %-8s %s, value %d\n",
			r.color(style.Cache, style.Moss), c.Cell, plural(len(c.Coins), "coin"), c.Total)
	}

	_, _ = fmt.Fprintf(r.out, "%s %s\n", label("Undo"), undoLabel(v.Undo))
	_, _ = fmt.Fprintf(r.out, "%s %d\n", label("World"), v.TotalValue)
}

// WriteCollected reports a collected coin.
func (r *Renderer) WriteCollected(cell domain.Cell, coin domain.Coin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.out, "%s collected %s (%d) from %s\n",
		r.color(style.Check, style.Moss), coin.ID, coin.Value, cell)
}

// WriteDeposited reports a deposit of n coins.
func (r *Renderer) WriteDeposited(cell domain.Cell, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n == 0 {
		_, _ = fmt.Fprintf(r.out, "%s nothing to deposit at %s\n", r.color(style.Warning, style.Yellow), cell)
		return
	}
	_, _ = fmt.Fprintf(r.out, "%s deposited %s into %s\n",
		r.color(style.Check, style.Moss), plural(n, "coin"), cell)
}

// WriteMessage prints a confirmation line.
func (r *Renderer) WriteMessage(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.out, "%s %s\n", r.color(style.Check, style.Moss), msg)
}

func (r *Renderer) color(s string, c lipgloss.Color) string {
	return r.out.String(s).Foreground(r.out.Color(string(c))).String()
}

func undoLabel(s domain.StackState) string {
	if s == domain.StackNonEmpty {
		return "available"
	}
	return "nothing to undo"
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
