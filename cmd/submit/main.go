// Command submit is the terminal submission form. It validates the email
// locally before sending and caps the description at 1000 characters while
// typing; the server applies its own (looser) limits on top.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/share2solve/backend/internal/client"
	"github.com/share2solve/backend/internal/validate"
)

// maxEntryLength is the form-side input ceiling. It is stricter than the
// server's maximum on purpose so the form never produces a rejected length.
const maxEntryLength = 1000

func main() {
	_ = godotenv.Load()

	baseURL := os.Getenv("SHARE2SOLVE_API")
	if baseURL == "" {
		baseURL = "http://localhost:8080/api"
	}
	api := client.New(baseURL)

	rl, err := readline.New("> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "terminal init failed:", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Println("Share a problem you'd like solved.")

	email, ok := promptEmail(rl)
	if !ok {
		return
	}
	problem, ok := promptProblem(rl)
	if !ok {
		return
	}

	created, err := api.Submit(context.Background(), email, problem, time.Time{})
	if err != nil {
		fmt.Println("Submission failed:", err)
		os.Exit(1)
	}
	fmt.Printf("Thank you! Your problem was submitted (id %s).\n", created.ID)
}

func promptEmail(rl *readline.Instance) (string, bool) {
	rl.SetPrompt("Email: ")
	for {
		line, err := rl.Readline()
		if err != nil {
			return "", false
		}
		email := strings.TrimSpace(line)
		if email == "" {
			fmt.Println("Email is required.")
			continue
		}
		if !validate.Email(email) {
			fmt.Println("Invalid email format.")
			continue
		}
		return email, true
	}
}

// promptProblem reads the description line by line until a lone "." line.
// Input past the entry ceiling is cut off and ends the form.
func promptProblem(rl *readline.Instance) (string, bool) {
	fmt.Printf("Describe the problem (end with a single '.' on its own line, %d characters max):\n", maxEntryLength)
	rl.SetPrompt("| ")

	var b strings.Builder
	for {
		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", false
		}
		if strings.TrimSpace(line) == "." {
			break
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)

		if runes := []rune(b.String()); len(runes) >= maxEntryLength {
			fmt.Printf("Reached the %d character limit.\n", maxEntryLength)
			return strings.TrimSpace(string(runes[:maxEntryLength])), true
		}
		fmt.Printf("(%d/%d characters)\n", len([]rune(b.String())), maxEntryLength)
	}

	text := strings.TrimSpace(b.String())
	if len([]rune(text)) < validate.MinProblemLength {
		fmt.Printf("Problem description too short (min %d characters).\n", validate.MinProblemLength)
		return "", false
	}
	return text, true
}
