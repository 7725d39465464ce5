package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alexanderramin/activitylog/internal/kv"
	"github.com/alexanderramin/activitylog/internal/repository"
	"github.com/alexanderramin/activitylog/internal/service"
	"github.com/alexanderramin/activitylog/internal/testutil"
)

// testApp wires a full App over a temp-file SQLite store.
func testApp(t *testing.T) *App {
	t.Helper()
	store := kv.NewSQLiteStore(testutil.NewTestDB(t))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := testutil.FixedClock(testutil.FixedNow)

	return &App{
		Gaming: service.NewGamingService(repository.NewSessionLogStore(store, logger), service.GamingOptions{
			Clock:  clock,
			Logger: logger,
		}),
		Activities: service.NewActivityService(context.Background(), repository.NewActivityStore(store, logger), logger),
		Now:        clock,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
