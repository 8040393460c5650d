package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/menulens/menulens-cli/internal/dataset"
	"github.com/menulens/menulens-cli/internal/llm"
	"github.com/menulens/menulens-cli/internal/stats"
	"github.com/menulens/menulens-cli/internal/visualizer"
)

// runMenu drives the interactive application loop: print the numbered menu,
// read a choice, dispatch, repeat until the user exits. Every operation is
// handled at its boundary; only startup failures escape this loop.
func runMenu(in io.Reader, out io.Writer, food, drinks *dataset.Dataset, svc *llm.Service) error {
	r := bufio.NewReader(in)
	for {
		fmt.Fprintln(out, strings.Repeat("=", 40))
		fmt.Fprintln(out, "MENULENS - STARBUCKS NUTRITION ANALYSIS")
		fmt.Fprintln(out, strings.Repeat("=", 40))
		fmt.Fprintln(out, "Choose an option (1 or 2 or 3 or 4):")
		fmt.Fprintln(out, "1. Generate nutritional insights")
		fmt.Fprintln(out, "2. Filter dataset mode")
		fmt.Fprintln(out, "3. Interactive chat")
		fmt.Fprintln(out, "4. Exit")
		fmt.Fprintln(out, strings.Repeat("=", 40))

		choice, err := readLine(r)
		if err != nil {
			return nil // EOF ends the session
		}

		switch strings.TrimSpace(choice) {
		case "1":
			runInsights(out, food, drinks, cfg.StatsChart, cfg.ComparisonChart)
			waitForReturn(r, out)
		case "2":
			runFilterLoop(r, out, food, drinks)
		case "3":
			runChatLoop(r, out, svc, food, drinks)
		case "4":
			fmt.Fprintln(out, "\nGoodbye! Thank you for using MenuLens.")
			return nil
		default:
			fmt.Fprintln(out, "Invalid input, please type again.")
		}
	}
}

// readLine reads one line, trimming the trailing newline.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// isQuit reports whether the input returns the user to the menu.
func isQuit(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

// waitForReturn blocks until the user asks to go back to the menu.
func waitForReturn(r *bufio.Reader, out io.Writer) {
	fmt.Fprintln(out, "Type 'quit', 'exit' or 'q' to return to menu")
	for {
		line, err := readLine(r)
		if err != nil || isQuit(line) {
			fmt.Fprintln(out, "Returning to menu...")
			return
		}
	}
}

// runFilterLoop prompts for category, column, operator, and value(s), applies
// the filter, and prints the result. Validation problems are reported with
// the valid options and the loop re-prompts instead of crashing.
func runFilterLoop(r *bufio.Reader, out io.Writer, food, drinks *dataset.Dataset) {
	categories := map[string]*dataset.Dataset{"food": food, "drinks": drinks}
	for {
		fmt.Fprint(out, "\nChoose a category to filter (food/drinks): ")
		category, err := readLine(r)
		if err != nil {
			return
		}
		if isQuit(category) {
			fmt.Fprintln(out, "Returning to menu...")
			return
		}
		ds, ok := categories[strings.ToLower(strings.TrimSpace(category))]
		if !ok {
			fmt.Fprintln(out, "Invalid category. Valid: food, drinks")
			continue
		}

		fmt.Fprintf(out, "Here are the available columns to filter: %s\n",
			strings.ToLower(strings.Join(ds.NumericColumns(), ", ")))
		fmt.Fprint(out, "Which nutrient/column do you want to filter by? ")
		column, err := readLine(r)
		if err != nil {
			return
		}

		fmt.Fprint(out, "Operator (>, <, ==, between): ")
		opTok, err := readLine(r)
		if err != nil {
			return
		}
		op, opErr := stats.ParseOperator(opTok)
		if opErr != nil {
			fmt.Fprintf(out, "✗ %v\n", opErr)
			continue
		}

		var valueStr, lowStr, highStr string
		if op == stats.OpBetween {
			fmt.Fprint(out, "Enter min value: ")
			if lowStr, err = readLine(r); err != nil {
				return
			}
			fmt.Fprint(out, "Enter max value: ")
			if highStr, err = readLine(r); err != nil {
				return
			}
		} else {
			fmt.Fprint(out, "Enter value: ")
			if valueStr, err = readLine(r); err != nil {
				return
			}
		}

		spec, specErr := makeSpec(column, opTok, valueStr, lowStr, highStr)
		if specErr != nil {
			fmt.Fprintf(out, "✗ %v\n", specErr)
			continue
		}
		filtered, filterErr := stats.Apply(ds, spec)
		if filterErr != nil {
			fmt.Fprintf(out, "✗ %v\n", filterErr)
			continue
		}

		fmt.Fprintln(out)
		fmt.Fprint(out, visualizer.FormatFiltered(filtered))

		fmt.Fprintln(out, "\nPress Enter to continue filtering, or type 'quit', 'exit' or 'q' to return to menu")
		line, err := readLine(r)
		if err != nil || isQuit(line) {
			fmt.Fprintln(out, "Returning to menu...")
			return
		}
	}
}

// runChatLoop reads free-text questions and answers them through the LLM
// service. Service failures print as the answer substitute; the loop keeps
// accepting input.
func runChatLoop(r *bufio.Reader, out io.Writer, svc *llm.Service, food, drinks *dataset.Dataset) {
	dataContext := llm.BuildContext(food, drinks)

	fmt.Fprintln(out, "\n====== Interactive Chat Mode ======")
	fmt.Fprintln(out, "Ask questions about Starbucks menu items (e.g. summarize the nutritional insights of the data)")
	fmt.Fprintln(out, "Type 'quit', 'exit' or 'q' to return to menu")

	for {
		fmt.Fprint(out, "You: ")
		question, err := readLine(r)
		if err != nil {
			return
		}
		if isQuit(question) {
			fmt.Fprintln(out, "Returning to menu...")
			return
		}
		if strings.TrimSpace(question) == "" {
			continue
		}

		answer := askOnce(svc, question, dataContext)
		fmt.Fprintf(out, "\nLLM: %s\n\n", answer)
	}
}
