package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"rootdict/dict"
)

func main() {
	listOnly := flag.Bool("list", false, "print the dictionary rows and exit")
	dictPath := flag.String("dict", "", "dictionary file (overrides config)")
	flag.Parse()

	config, err := GetConfig()
	if err != nil {
		log.Fatal(err)
	}
	path := config.DictPath
	if *dictPath != "" {
		path = *dictPath
	}

	store := dict.Open(path)

	if *listOnly || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(listRows(store))
		return
	}

	p := tea.NewProgram(newModel(store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}

	// flush before the host re-reads the file
	if err := store.Save(); err != nil {
		log.Fatal(err)
	}
	notifier := &execNotifier{argv: config.ReloadCommand}
	if err := notifier.ReloadRoots(); err != nil {
		log.Printf("notifying host input method: %v", err)
	}
}

func listRows(store *dict.Store) string {
	var s strings.Builder
	for _, row := range store.ListRows() {
		fmt.Fprintf(&s, "%3d  %-5s  %s\n", row.Position, row.Key, row.Value)
	}
	return s.String()
}

// execNotifier tells the host input method to reload root-key data by
// running the configured command.
type execNotifier struct {
	argv []string
}

var _ dict.Notifier = (*execNotifier)(nil)

func (n *execNotifier) ReloadRoots() error {
	if len(n.argv) == 0 {
		return nil
	}
	cmd := exec.Command(n.argv[0], n.argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("running reload command: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	return nil
}
