package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"newsreel/footage"
	"newsreel/internal/config"
	"newsreel/internal/platform"
	"newsreel/processing"
	"newsreel/speech"
	"newsreel/tasks"
	"newsreel/worker"
)

func main() {
	platform.LoadEnv()
	cfg := config.FromEnv()

	db, err := platform.NewDBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	rdb := platform.NewRedisClient()

	// All external clients are constructed here and injected; handlers
	// never reach into the environment themselves.
	llm, err := processing.NewClient(os.Getenv("OPENAI_API_KEY"))
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}
	sp, err := speech.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.Voice)
	if err != nil {
		log.Fatalf("Failed to create speech client: %v", err)
	}
	ft, err := footage.NewClient(os.Getenv("PEXELS_API_KEY"))
	if err != nil {
		log.Fatalf("Failed to create footage client: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := worker.NewProcessor(db, rdb, llm, sp, ft, cfg)

	p.Register(tasks.QueueHeadline, p.HandleHeadline)
	p.Register(tasks.QueueOutline, p.HandleOutline)
	p.Register(tasks.QueueSections, p.HandleSections)
	p.Register(tasks.QueueVoiceover, p.HandleVoiceover)
	p.Register(tasks.QueueTranscript, p.HandleTranscript)
	p.Register(tasks.QueueSegment, p.HandleSegment)
	p.Register(tasks.QueueFootage, p.HandleFootage)

	log.Println("Worker started, waiting for queue tasks...")
	p.Listen(ctx,
		tasks.QueueHeadline,
		tasks.QueueOutline,
		tasks.QueueSections,
		tasks.QueueVoiceover,
		tasks.QueueTranscript,
		tasks.QueueSegment,
		tasks.QueueFootage,
	)
}
