// Command admin is the terminal review dashboard: it authenticates against
// the admin login endpoint, fetches the full problem list and browses it
// through the local filter/sort/paginate pipeline. The credential is kept in
// the session loop and passed explicitly to every mutating call.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/share2solve/backend/internal/client"
	"github.com/share2solve/backend/internal/model"
	"github.com/share2solve/backend/internal/review"
)

const helpText = `Commands:
  list                 show the current page
  search <term>        filter by email or problem text (no term clears)
  sort <key>           newest | oldest | email | status
  page <n> / next / prev
  stats                pending / resolved / last-24h counters
  toggle <id>          flip a problem between pending and resolved
  delete <id>          delete a problem (undo available for 5 seconds)
  undo                 restore the last deleted problem (new id)
  clear                delete ALL problems, one request per record
  export <file>        write all problems to a CSV file
  refresh              re-fetch the list from the server
  logout / quit        exit`

func main() {
	_ = godotenv.Load()

	baseURL := os.Getenv("SHARE2SOLVE_API")
	if baseURL == "" {
		baseURL = "http://localhost:8080/api"
	}
	api := client.New(baseURL)
	ctx := context.Background()

	rl, err := readline.New("admin> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "terminal init failed:", err)
		os.Exit(1)
	}
	defer rl.Close()

	password, ok := login(ctx, rl, api)
	if !ok {
		return
	}

	session := &session{
		api:      api,
		password: password,
		view:     review.NewView(),
		undo:     review.NewUndoBuffer(review.UndoWindow),
	}
	if err := session.refresh(ctx); err != nil {
		fmt.Println("Failed to load problems:", err)
		fmt.Println("Type 'refresh' to retry.")
	} else {
		session.render()
	}

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "":
		case "help":
			fmt.Println(helpText)
		case "list":
			session.render()
		case "search":
			session.view.SetSearch(arg)
			session.render()
		case "sort":
			switch arg {
			case model.SortNewest, model.SortOldest, model.SortEmail, model.SortStatus:
				session.view.SetSort(arg)
				session.render()
			default:
				fmt.Println("sort key must be one of: newest, oldest, email, status")
			}
		case "page":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("usage: page <number>")
				continue
			}
			session.view.SetPage(n)
			session.render()
		case "next":
			session.view.SetPage(session.view.Page().Number + 1)
			session.render()
		case "prev":
			session.view.SetPage(session.view.Page().Number - 1)
			session.render()
		case "stats":
			session.printStats()
		case "toggle":
			session.toggle(ctx, arg)
		case "delete":
			session.delete(ctx, arg)
		case "undo":
			session.undoDelete(ctx)
		case "clear":
			session.clearAll(ctx, rl)
		case "export":
			session.exportCSV(arg)
		case "refresh":
			if err := session.refresh(ctx); err != nil {
				fmt.Println("Failed to load problems:", err)
			} else {
				session.render()
			}
		case "logout", "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q (try 'help')\n", cmd)
		}
	}
}

// login prompts for the admin password until the server accepts it.
func login(ctx context.Context, rl *readline.Instance, api *client.Client) (string, bool) {
	for {
		pw, err := rl.ReadPassword("Password: ")
		if err != nil {
			return "", false
		}
		if err := api.VerifyAdmin(ctx, string(pw)); err != nil {
			var apiErr *client.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == 401 {
				fmt.Println("Incorrect password. Please try again.")
				continue
			}
			fmt.Println("Login failed:", err)
			continue
		}
		return string(pw), true
	}
}

// session holds the dashboard state: the fetched record set inside the view,
// the undo buffer and the verified credential.
type session struct {
	api      *client.Client
	password string
	view     *review.View
	undo     *review.UndoBuffer
	problems []*model.Problem
}

// refresh re-fetches the full list and replaces the view's record set.
func (s *session) refresh(ctx context.Context) error {
	problems, err := s.api.Problems(ctx, client.ListFilters{})
	if err != nil {
		return err
	}
	s.problems = problems
	s.view.SetProblems(problems)
	return nil
}

func (s *session) render() {
	page := s.view.Page()
	if page.TotalItems == 0 {
		if s.view.Search() != "" {
			fmt.Println("No results found. Try adjusting your search.")
		} else {
			fmt.Println("No problems submitted yet.")
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tSTATUS\tSUBMITTED\tPROBLEM")
	for _, p := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(p.ID), p.Email, p.Status,
			p.Timestamp.Local().Format("2006-01-02 15:04"),
			truncate(p.Problem, 48))
	}
	w.Flush()
	fmt.Printf("Page %d/%d (%d problems", page.Number, page.TotalPages, page.TotalItems)
	if s.view.Search() != "" {
		fmt.Printf(", search %q", s.view.Search())
	}
	fmt.Printf(", sort %s)\n", s.view.SortBy())
}

func (s *session) printStats() {
	st := s.view.Stats(time.Now())
	fmt.Printf("%d total: %d pending, %d resolved, %d new in the last 24h\n",
		st.Total, st.Pending, st.Resolved, st.Recent)
}

// findProblem resolves a full id or unique id prefix against the fetched set.
func (s *session) findProblem(arg string) (*model.Problem, error) {
	if arg == "" {
		return nil, errors.New("an id is required")
	}
	var match *model.Problem
	for _, p := range s.problems {
		if p.ID == arg {
			return p, nil
		}
		if strings.HasPrefix(p.ID, arg) {
			if match != nil {
				return nil, fmt.Errorf("id prefix %q is ambiguous", arg)
			}
			match = p
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no problem with id %q", arg)
	}
	return match, nil
}

func (s *session) toggle(ctx context.Context, arg string) {
	p, err := s.findProblem(arg)
	if err != nil {
		fmt.Println(err)
		return
	}
	next := model.StatusResolved
	if p.Status == model.StatusResolved {
		next = model.StatusPending
	}
	if _, err := s.api.UpdateStatus(ctx, p.ID, next, s.password); err != nil {
		fmt.Println("Failed to update status:", err)
		return
	}
	if err := s.refresh(ctx); err != nil {
		fmt.Println("Updated, but reloading failed:", err)
		return
	}
	fmt.Printf("Marked %s as %s.\n", shortID(p.ID), next)
	s.render()
}

func (s *session) delete(ctx context.Context, arg string) {
	p, err := s.findProblem(arg)
	if err != nil {
		fmt.Println(err)
		return
	}
	deleted, err := s.api.Delete(ctx, p.ID, s.password)
	if err != nil {
		fmt.Println("Failed to delete:", err)
		return
	}
	s.undo.Hold(deleted)
	if err := s.refresh(ctx); err != nil {
		fmt.Println("Deleted, but reloading failed:", err)
		return
	}
	fmt.Println("Problem deleted. Type 'undo' within 5 seconds to restore it.")
	s.render()
}

func (s *session) undoDelete(ctx context.Context) {
	p, ok := s.undo.Take()
	if !ok {
		fmt.Println("Nothing to undo.")
		return
	}
	// Reinsertion creates a fresh record; the id will differ from the original.
	if _, err := s.api.Submit(ctx, p.Email, p.Problem, p.Timestamp); err != nil {
		fmt.Println("Failed to restore:", err)
		return
	}
	if err := s.refresh(ctx); err != nil {
		fmt.Println("Restored, but reloading failed:", err)
		return
	}
	fmt.Println("Problem restored.")
	s.render()
}

// clearAll deletes every problem with one request per record. A failure
// partway through leaves the rest in place; there is no rollback.
func (s *session) clearAll(ctx context.Context, rl *readline.Instance) {
	if len(s.problems) == 0 {
		fmt.Println("Nothing to clear.")
		return
	}
	rl.SetPrompt(fmt.Sprintf("Delete ALL %d problems? This cannot be undone! Type 'yes' to confirm: ", len(s.problems)))
	answer, err := rl.Readline()
	rl.SetPrompt("admin> ")
	if err != nil || strings.TrimSpace(answer) != "yes" {
		fmt.Println("Cancelled.")
		return
	}

	deleted, failed := 0, 0
	for _, p := range s.problems {
		if _, err := s.api.Delete(ctx, p.ID, s.password); err != nil {
			failed++
			continue
		}
		deleted++
	}
	if err := s.refresh(ctx); err != nil {
		fmt.Println("Cleared, but reloading failed:", err)
	}
	if failed > 0 {
		fmt.Printf("Deleted %d problems; %d failed and remain.\n", deleted, failed)
	} else {
		fmt.Printf("Deleted %d problems.\n", deleted)
	}
	s.render()
}

// exportCSV writes the full (unfiltered) record set to a CSV file.
func (s *session) exportCSV(path string) {
	if path == "" {
		path = "share2solve-problems-" + time.Now().Format("2006-01-02") + ".csv"
	}
	if len(s.problems) == 0 {
		fmt.Println("Nothing to export.")
		return
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Println("Failed to create file:", err)
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"Email", "Problem", "Submitted"})
	for _, p := range s.problems {
		_ = w.Write([]string{p.Email, p.Problem, p.Timestamp.Local().Format(time.RFC3339)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Println("Failed to write CSV:", err)
		return
	}
	fmt.Printf("Exported %d problems to %s\n", len(s.problems), path)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if r := []rune(s); len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}
