// Package cli implements the interactive task view: a REPL that renders the
// task list, collects user intent, and keeps displayed state in sync with
// the store by refetching the full list after every confirmed mutation.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
	"github.com/dmitrijs2005/taskboard/internal/client/config"
	"github.com/dmitrijs2005/taskboard/internal/client/models"
	"github.com/dmitrijs2005/taskboard/internal/client/view"
)

// isTerminalFn is a test seam for terminal detection.
var isTerminalFn = term.IsTerminal

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// taskAPI is the transport surface the view depends on. api.Client satisfies
// it; tests substitute stubs.
type taskAPI interface {
	List(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, text string) (*models.Task, error)
	Update(ctx context.Context, id int64, text *string, completed *bool) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

type App struct {
	config      *config.Config
	api         taskAPI
	state       *view.State
	reader      *bufio.Reader
	out         io.Writer
	Mode        Mode
	interactive bool
}

func NewApp(c *config.Config) *App {
	return &App{
		config:      c,
		api:         api.NewClient(c.ServerBaseURL, c.RequestTimeout),
		state:       view.NewState(),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: isTerminalFn(int(os.Stdin.Fd())),
	}
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

// Prompt renders the REPL prompt with the active filter and connection mode.
// Empty when stdin is not a terminal so piped scripts stay clean.
func (a *App) Prompt() string {
	if !a.interactive {
		return ""
	}
	s := string(a.state.Filter)
	if a.Mode != ModeUnknown {
		s = s + " " + string(a.Mode)
	}
	return fmt.Sprintf("tb (%s)> ", s)
}

// Run fetches the initial list, starts the reachability watcher, and hands
// control to the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.interactive {
		printfFn("Taskboard CLI (type 'help' for commands)\n")
	}

	a.Refresh(ctx)

	if a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}

// StartOnlineStatusWatcher periodically pings the server and flips the
// displayed mode between online and offline.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode != ModeOffline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
