package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/cultural-explorer-bot/internal/config"
	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/repository"
	"github.com/aliskhannn/cultural-explorer-bot/internal/service"
	"github.com/aliskhannn/cultural-explorer-bot/internal/ui/quiz"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadLocal()
	if err != nil {
		log.Fatal(err)
	}

	catalogPath := flag.String("catalog", cfg.Catalog.Path, "path to the cultures JSON file")
	size := flag.Int("n", cfg.Quiz.DefaultSize, "questions per quiz, 0 for all")
	modeFlag := flag.String("mode", string(entities.ModeMixed), "quiz mode: mixed, geography, language, food, holidays or clothing")
	noColor := flag.Bool("no-color", false, "disable colors")
	flag.Parse()

	mode, ok := entities.ParseQuizMode(*modeFlag)
	if !ok {
		log.Fatalf("unknown quiz mode %q", *modeFlag)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The catalog loads in the background; the model shows a waiting
	// screen and retries until it is ready.
	repo := repository.NewCountryRepository(*catalogPath)
	refresher := service.NewCatalogRefresher(repo, "", zap.NewNop())
	go func() { _ = refresher.Start(ctx) }()

	manager := service.NewQuizManager(repo, service.NewRand())
	if err := manager.GenerateQuestions(mode); err != nil && !errors.Is(err, service.ErrNotReady) {
		log.Fatal(err)
	}

	model := quiz.NewModel(manager, quiz.Options{Size: *size, NoColor: *noColor})
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		log.Fatal(err)
	}

	if m, ok := final.(quiz.Model); ok && m.Err() != nil {
		fmt.Fprintln(os.Stderr, m.Err())
		os.Exit(1)
	}
}
