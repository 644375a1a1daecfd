// Package cli handles line-oriented lookups on stdin for scripting and debugging
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/choseong/internal/clipboard"
	"github.com/bastiangx/choseong/internal/logger"
	"github.com/bastiangx/choseong/pkg/lookup"
	"github.com/charmbracelet/log"
)

// Options holds the card headings printed above results.
type Options struct {
	ExactTitle   string
	SuggestTitle string
}

// InputHandler reads one query per line and prints the resulting plan.
// Lines starting with ':' are commands acting on the last plan:
//
//	:load N   query the N-th suggestion
//	:copy N   copy the N-th answer
//	:clear    reset to the empty query
type InputHandler struct {
	engine  *lookup.Engine
	copier  clipboard.Copier
	opts    Options
	printer *log.Logger
	last    lookup.Plan
}

// NewInputHandler creates a handler writing its output to out.
func NewInputHandler(engine *lookup.Engine, copier clipboard.Copier, opts Options, out io.Writer) *InputHandler {
	if copier == nil {
		copier = clipboard.Discard
	}
	return &InputHandler{
		engine:  engine,
		copier:  copier,
		opts:    opts,
		printer: logger.Printer(out),
	}
}

// Start runs the loop on stdin until EOF.
func (h *InputHandler) Start() error {
	h.printer.Print("choseong CLI")
	h.printer.Print("type a key and press Enter (:load N, :copy N, :clear, Ctrl+D to exit):")
	return h.Run(os.Stdin)
}

// Run processes lines from r until EOF.
func (h *InputHandler) Run(r io.Reader) error {
	h.render(h.engine.Query(""))

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		h.HandleLine(scanner.Text())
	}
	return scanner.Err()
}

// HandleLine processes a single line and returns the plan it rendered.
func (h *InputHandler) HandleLine(line string) lookup.Plan {
	if cmd, arg, ok := parseCommand(line); ok {
		switch cmd {
		case "load":
			if key, ok := pick(h.last.SuggestionKeys(), arg); ok {
				return h.render(h.engine.Load(key))
			}
			log.Warnf("No suggestion #%s", arg)
			return h.last
		case "copy":
			if answer, ok := pick(h.last.Answers(), arg); ok {
				clipboard.Dispatch(h.copier, answer)
				h.printer.Printf("copied: %s", answer)
			} else {
				log.Warnf("No answer #%s", arg)
			}
			return h.last
		case "clear":
			return h.render(h.engine.Query(""))
		}
	}

	start := time.Now()
	plan := h.engine.Query(line)
	log.Debugf("Took [ %v ] for query '%s'", time.Since(start), plan.Query)
	return h.render(plan)
}

func parseCommand(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		return "", "", false
	}
	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return "", "", false
	}
	switch fields[0] {
	case "load", "copy", "clear":
	default:
		return "", "", false
	}
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}
	return fields[0], arg, true
}

// pick returns the 1-based n-th element of items.
func pick(items []string, n string) (string, bool) {
	i, err := strconv.Atoi(n)
	if err != nil || i < 1 || i > len(items) {
		return "", false
	}
	return items[i-1], true
}

func (h *InputHandler) render(plan lookup.Plan) lookup.Plan {
	h.last = plan

	if plan.Message != lookup.MessageNone {
		h.printer.Print(plan.Text)
		return plan
	}

	if plan.Exact != nil {
		h.printer.Printf("[%s] %s%s", h.opts.ExactTitle, plan.Exact.Key, chips(plan.Exact.Categories))
		for i, a := range plan.Exact.Answers {
			h.printer.Printf("%3d. %s", i+1, a)
		}
	}
	if len(plan.Suggestions) > 0 {
		h.printer.Printf("[%s] %d", h.opts.SuggestTitle, len(plan.Suggestions))
		for i, s := range plan.Suggestions {
			h.printer.Printf("%3d. %s%s", i+1, s.Key, chips(s.Categories))
		}
	}
	return plan
}

func chips(categories []string) string {
	if len(categories) == 0 {
		return ""
	}
	var b strings.Builder
	for _, c := range categories {
		fmt.Fprintf(&b, "  #%s", c)
	}
	return b.String()
}
