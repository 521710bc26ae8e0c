package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/finflow/internal/dashboard"
)

// consoleView prints each dashboard region update to stdout. It stands in for
// the browser DOM so the client core can be exercised against a live server.
type consoleView struct{}

func (consoleView) RenderTicker(html string) {
	fmt.Printf("--- ticker ---\n%s\n", html)
}

func (consoleView) RenderNews(html string) {
	fmt.Printf("--- news ---\n%s\n", html)
}

func (consoleView) RenderFeedError(message string) {
	fmt.Printf("--- feed error ---\n%s\n", message)
}

func (consoleView) SetAnswer(text string) {
	fmt.Printf("--- answer ---\n%s\n", text)
}

func (consoleView) SetAskBusy(busy bool) {
	fmt.Printf("--- ask busy: %v ---\n", busy)
}

func (consoleView) ClearQuestion() {
	fmt.Println("--- question cleared ---")
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "FinFlow server base URL")
	question := flag.String("ask", "", "Optional question to send after loading the feed")
	timeout := flag.Duration("timeout", 30*time.Second, "Overall request timeout")
	flag.Parse()

	logger := arbor.NewLogger()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	controller := dashboard.NewController(*baseURL, consoleView{}, dashboard.WithLogger(logger))
	controller.LoadFeed(ctx)

	if *question != "" {
		controller.Ask(ctx, *question)
	}

	if len(controller.News()) == 0 && len(controller.Stocks()) == 0 {
		fmt.Fprintln(os.Stderr, "no feed data received")
		os.Exit(1)
	}
}
