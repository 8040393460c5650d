package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/menulens/menulens-cli/internal/llm"
)

var chatCmd = &cobra.Command{
	Use:   "chat [question]",
	Short: "Ask the LLM about the nutrition data",
	Long: `With a question argument, asks once and prints the answer. Without
arguments, starts the interactive chat loop. Requires GROQ_API_KEY.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		food, drinks, err := loadDatasets()
		if err != nil {
			return err
		}
		svc := newLLMService()
		if len(args) > 0 {
			question := strings.Join(args, " ")
			answer := askOnce(svc, question, llm.BuildContext(food, drinks))
			fmt.Fprintf(os.Stdout, "%s\n", answer)
			return nil
		}
		runChatLoop(bufio.NewReader(os.Stdin), os.Stdout, svc, food, drinks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// askOnce performs one question round trip. Service errors come back as the
// printable answer substitute so the caller's loop keeps running.
func askOnce(svc *llm.Service, question, dataContext string) string {
	exchange, err := svc.Ask(context.Background(), question, dataContext)
	if err != nil {
		return fmt.Sprintf("(no answer: %v)", err)
	}
	return exchange.Answer
}
