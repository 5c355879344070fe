package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jomei/notionapi"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/harrisonrobin/ntsync/pkg/auth"
	"github.com/harrisonrobin/ntsync/pkg/config"
	"github.com/harrisonrobin/ntsync/pkg/notion"
	"github.com/harrisonrobin/ntsync/pkg/reconcile"
	"github.com/harrisonrobin/ntsync/pkg/todoist"
)

func main() {
	os.Exit(run())
}

// run performs one sync and returns the process exit code. It returns rather
// than exiting so deferred cleanup, such as closing the log file, still runs.
func run() int {
	// 1. Configuration (environment, then .env)
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		return 1
	}

	// 2. Optional log file, rotated
	if cfg.LogFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		defer rotator.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, rotator))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Clients
	httpClient, err := auth.GetClient(ctx, cfg.TodoistKey)
	if err != nil {
		log.Printf("Error creating Todoist client: %v", err)
		return 1
	}
	todoistClient := todoist.NewClient(httpClient, cfg.TodoistURL)

	notionClient := notion.NewClient(notionapi.NewClient(notionapi.Token(cfg.NotionKey)), notion.Databases{
		Areas:    notionapi.DatabaseID(cfg.AreasDB),
		Projects: notionapi.DatabaseID(cfg.ProjectsDB),
		Tasks:    notionapi.DatabaseID(cfg.TasksDB),
	})

	// 4. Sync
	r := reconcile.New(notionClient, todoistClient, reconcile.Options{
		AreaColour:    cfg.AreaColour,
		ProjectColour: cfg.ProjectColour,
	})
	report, err := r.Run(ctx)
	if err != nil {
		log.Printf("Sync aborted: %v", err)
		return 1
	}
	log.Printf("Sync finished: %s", report)
	if report.Failures > 0 {
		log.Printf("%d writes failed and will be retried on the next run", report.Failures)
	}
	return 0
}
