package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/connect4/engine/internal/config"
	"github.com/iamasit07/connect4/engine/internal/domain"
	"github.com/iamasit07/connect4/engine/internal/service/bot"
	"github.com/iamasit07/connect4/engine/pkg/uid"
	"github.com/joho/godotenv"
)

// selfplay pits two bot difficulties against each other and reports a
// win/draw tally. Useful as a quick strength check after touching the
// evaluator or search.
func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()
	engine := &bot.Engine{
		MediumDepth: cfg.MediumDepth,
		HardDepth:   cfg.HardDepth,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	redName := domain.GetBotName(cfg.RedDifficulty)
	yellowName := domain.GetBotName(cfg.YellowDifficulty)
	log.Printf("[SELFPLAY] %s (red, %s) vs %s (yellow, %s), %d games",
		redName, cfg.RedDifficulty, yellowName, cfg.YellowDifficulty, cfg.SelfplayGames)

	redWins, yellowWins, draws := 0, 0, 0

	for i := 0; i < cfg.SelfplayGames; i++ {
		select {
		case <-quit:
			log.Println("[SELFPLAY] interrupted, reporting partial tally")
			report(redName, yellowName, redWins, yellowWins, draws)
			return
		default:
		}

		gameID := uid.GenerateGameID()
		winner, moves, err := playGame(engine, cfg.RedDifficulty, cfg.YellowDifficulty)
		if err != nil {
			log.Fatalf("[SELFPLAY] game %s failed: %v", gameID, err)
		}

		switch winner {
		case domain.Red:
			redWins++
			log.Printf("[SELFPLAY] game %s: %s wins in %d moves", gameID, redName, moves)
		case domain.Yellow:
			yellowWins++
			log.Printf("[SELFPLAY] game %s: %s wins in %d moves", gameID, yellowName, moves)
		default:
			draws++
			log.Printf("[SELFPLAY] game %s: draw after %d moves", gameID, moves)
		}
	}

	report(redName, yellowName, redWins, yellowWins, draws)
}

// playGame runs one full game and returns the winner (Empty for a
// draw) and the number of moves played.
func playGame(engine *bot.Engine, redDifficulty, yellowDifficulty domain.Difficulty) (domain.Cell, int, error) {
	state := domain.NewGame()

	for !state.IsGameOver {
		difficulty := redDifficulty
		if state.CurrentPlayer == domain.Yellow {
			difficulty = yellowDifficulty
		}

		decision, err := engine.ChooseMove(state, difficulty)
		if err != nil {
			return domain.Empty, state.MoveCount, err
		}

		next, _, err := domain.ApplyMove(state, decision.Column)
		if err != nil {
			return domain.Empty, state.MoveCount, err
		}
		state = next
	}

	return state.Winner, state.MoveCount, nil
}

func report(redName, yellowName string, redWins, yellowWins, draws int) {
	log.Printf("[SELFPLAY] tally: %s %d, %s %d, draws %d", redName, redWins, yellowName, yellowWins, draws)
}
