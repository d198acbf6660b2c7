package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/RCnetmiles/Lab-Label/internal/config"
	"github.com/RCnetmiles/Lab-Label/internal/game"
	"github.com/RCnetmiles/Lab-Label/internal/models"
)

func main() {
	cfg := config.Load()

	client := game.NewClient(cfg.ServerURL)
	reader := bufio.NewReader(os.Stdin)
	session := game.NewSession(cfg.TotalRounds)

	for {
		products, err := client.FetchProducts()
		if err != nil {
			log.Fatalf("failed to fetch products: %v", err)
		}

		if err := session.Begin(products); err != nil {
			log.Fatalf("failed to begin session: %v", err)
		}

		playSession(session, client, reader)

		fmt.Printf("\n=== SHIFT COMPLETE === final score: %d\n", session.Score)
		if !promptYesNo(reader, "Play another shift? (yes/no): ") {
			return
		}
		session.Restart()
	}
}

func playSession(session *game.Session, client *game.Client, reader *bufio.Reader) {
	for session.Phase == game.PhasePlaying {
		product, ok := session.Current()
		if !ok {
			return
		}

		fmt.Printf("\n--- ROUND %d/%d --- score: %d\n", session.RoundIndex+1, session.TotalRounds, session.Score)
		fmt.Printf("REQUISITION: %s\n%s\n", product.Name, product.Description)

		container := promptContainer(reader)
		if err := session.SetContainer(container); err != nil {
			fmt.Println(err)
			continue
		}

		for _, id := range promptPictograms(reader) {
			if err := session.TogglePictogram(id); err != nil {
				fmt.Println(err)
			}
		}

		// A transport failure leaves the round untouched; the stored
		// selections are re-sent on retry.
		result, err := client.Verify(product.ID, session.Selections.Container, session.Selections.Pictograms)
		for err != nil {
			fmt.Println("SYSTEM ERROR: Communication with mainframe failed.")
			if !promptYesNo(reader, "Retry transmission? (yes/no): ") {
				return
			}
			result, err = client.Verify(product.ID, session.Selections.Container, session.Selections.Pictograms)
		}

		if err := session.ApplyResult(result.Correct, result.ScoreDelta); err != nil {
			fmt.Println(err)
			continue
		}

		fmt.Printf("[%s] %s (%+d)\n", session.Stamp, result.Message, result.ScoreDelta)
		if !result.Correct {
			fmt.Printf("ground truth: %s container, pictograms %v\n", result.CorrectContainer, result.CorrectPictograms)
		}

		time.Sleep(game.StampDelay)
		if err := session.Advance(); err != nil {
			fmt.Println(err)
			return
		}
	}
}

func promptContainer(reader *bufio.Reader) string {
	for {
		fmt.Print("Container type (glass/plastic): ")
		line, _ := reader.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if models.IsValidContainer(answer) {
			return answer
		}
		fmt.Println("Pick glass or plastic.")
	}
}

func promptPictograms(reader *bufio.Reader) []string {
	fmt.Printf("Known pictograms: %s\n", strings.Join(models.Pictograms, ", "))
	fmt.Print("Hazard pictograms (comma-separated, empty for none): ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	var ids []string
	for _, part := range strings.Split(line, ",") {
		id := strings.ToLower(strings.TrimSpace(part))
		if id == "" {
			continue
		}
		if !models.IsValidPictogram(id) {
			// Unknown identifiers are submitted anyway; the server
			// scores them as incorrect rather than rejecting them.
			fmt.Printf("warning: %q is not a known pictogram\n", id)
		}
		ids = append(ids, id)
	}
	return ids
}

func promptYesNo(reader *bufio.Reader, prompt string) bool {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "yes" || answer == "y"
}
