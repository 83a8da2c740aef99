package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/idilsaglam/steps/internal/calendar"
	"github.com/idilsaglam/steps/internal/config"
	"github.com/idilsaglam/steps/internal/dates"
	"github.com/idilsaglam/steps/internal/nav"
	"github.com/idilsaglam/steps/internal/tui"
	"github.com/idilsaglam/steps/internal/ui"
)

// Options carry the resolved configuration and the output streams.
type Options struct {
	Config *config.Config
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time // defaults to time.Now
}

func (o *Options) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Config == nil {
		o.Config = config.Load()
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	opt.defaults()
	ui.SetTheme(opt.Config.Theme)
	if len(args) == 0 {
		args = []string{"ui"}
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "ui":
		if len(a) != 0 {
			ui.Fail(opt.Stderr, "usage: steps ui")
			return 2
		}
		return withApp(ctx, opt, doUI)

	case "toggle":
		if len(a) < 1 || len(a) > 2 {
			ui.Fail(opt.Stderr, "usage: steps toggle <item> [YYYY-MM-DD]")
			return 2
		}
		return withApp(ctx, opt, func(ctx context.Context, ap *app, opt Options) int {
			return doToggle(ctx, ap, opt, a)
		})

	case "show":
		if len(a) > 2 {
			ui.Fail(opt.Stderr, "usage: steps show [YYYY-MM] [item]")
			return 2
		}
		return withApp(ctx, opt, func(ctx context.Context, ap *app, opt Options) int {
			return doShow(ap, opt, a)
		})

	case "stats":
		return withApp(ctx, opt, doStats)

	case "items":
		return withApp(ctx, opt, doItems)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `steps - a habit tracking calendar

Usage:
  steps [flags] <subcommand> [args]

Subcommands:
  ui                       Interactive calendar (default)
  toggle <item> [date]     Toggle an item on a day (default today, YYYY-MM-DD)
  show [YYYY-MM] [item]    Print a month, all items or one
  stats                    Completed days per item
  items                    List categories and items

Examples:
  steps toggle GYM
  steps toggle JAVA 2024-06-15
  steps show 2024-06 JAVA
`)
}

func withApp(ctx context.Context, opt Options, fn func(context.Context, *app, Options) int) int {
	ap, err := openApp(ctx, opt)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	defer ap.close()
	return fn(ctx, ap, opt)
}

// -------------- subcommand impls ----------------

func doUI(ctx context.Context, ap *app, opt Options) int {
	if err := tui.Run(ctx, ap.sess, ap.log); err != nil {
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	return 0
}

func doToggle(ctx context.Context, ap *app, opt Options, a []string) int {
	e, ok := ap.sess.Catalog().Lookup(a[0])
	if !ok {
		ui.Fail(opt.Stderr, "unknown item: "+a[0])
		fmt.Fprintln(opt.Stderr, ui.Current().Muted.Render("Hint: run `steps items` to see valid items"))
		return 2
	}
	dateKey := dates.Today(ap.now())
	if len(a) == 2 {
		t, err := dates.ParseKey(a[1], time.Local)
		if err != nil {
			ui.Fail(opt.Stderr, "toggle: "+err.Error())
			return 2
		}
		dateKey = dates.FormatKey(t)
	}
	if err := ap.sess.Toggle(ctx, e, dateKey); err != nil {
		ui.Fail(opt.Stderr, "save: "+err.Error())
		return 1
	}
	state := "undone"
	if ap.sess.Data().Checked(e.ID(), dateKey) {
		state = "done"
	}
	ui.OK(opt.Stdout, fmt.Sprintf("%s %s %s", e.ID(), dateKey, state))
	return 0
}

func doShow(ap *app, opt Options, a []string) int {
	n := nav.New(ap.now())
	var selected []string
	for _, arg := range a {
		if t, err := time.ParseInLocation("2006-01", arg, time.Local); err == nil {
			n = nav.New(t)
			continue
		}
		selected = append(selected, arg)
	}
	for _, arg := range selected {
		e, ok := ap.sess.Catalog().Lookup(arg)
		if !ok {
			ui.Fail(opt.Stderr, "show: not a month (YYYY-MM) or item: "+arg)
			return 2
		}
		n = nav.SelectItem(n, e)
	}
	month := ap.sess.Calendar(n, dates.Today(ap.now()))
	fmt.Fprintln(opt.Stdout, ui.Panel(monthLines(ap, month)...))
	return 0
}

func monthLines(ap *app, m calendar.Month) []string {
	t := ui.Current()
	title := ui.MonthTitle(m.Year, m.Month)
	lines := []string{t.Title.Render(title), ""}
	if m.Selected.IsZero() {
		lines = append(lines, ui.RenderLegend(ap.sess.Catalog()), "")
	} else {
		lines = append(lines, t.Item(m.Selected, t.Title.Render(string(m.Selected.ID())+" Calendar")), "")
	}
	return append(lines, ui.RenderMonth(m, 0))
}

func doStats(_ context.Context, ap *app, opt Options) int {
	fmt.Fprintln(opt.Stdout, ui.Panel(ui.RenderStats(ap.sess.Stats())))
	return 0
}

func doItems(_ context.Context, ap *app, opt Options) int {
	t := ui.Current()
	c := ap.sess.Catalog()
	var lines []string
	for _, cat := range c.Categories() {
		lines = append(lines, t.Accent.Render(cat.Name))
		for _, id := range cat.Items {
			e, _ := c.Lookup(string(id))
			lines = append(lines, fmt.Sprintf("  %s %s", t.Item(e, t.Dot+" "+string(id)), t.Muted.Render(e.Color())))
		}
	}
	fmt.Fprintln(opt.Stdout, ui.Panel(strings.Join(lines, "\n")))
	return 0
}
