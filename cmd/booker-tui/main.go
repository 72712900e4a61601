package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/event-booker/booker/internal/app"
	"github.com/event-booker/booker/internal/client"
	"github.com/event-booker/booker/internal/session"
)

func main() {
	baseURL := flag.String("url", "http://127.0.0.1:8080", "Base URL of the booker catalog server")
	eventsPath := flag.String("path", client.DefaultEventsPath, "Path of the events catalog on the server")
	logPath := flag.String("log", "booker-tui.log", "File to write logs to")
	timeout := flag.Duration("timeout", 10*time.Second, "HTTP timeout for the catalog fetch")
	flag.Parse()

	// The terminal belongs to the UI; logs go to a file.
	f, err := tea.LogToFile(*logPath, "booker")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	logger := slog.New(slog.NewTextHandler(f, nil))

	httpClient := client.NewHTTPClient(*baseURL, *eventsPath, *timeout)
	logger.Info("starting", "catalog", httpClient.URL())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := app.New(ctx, httpClient, session.New(session.DefaultCredentials), logger)
	m.SetCatalogURL(httpClient.URL())
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
