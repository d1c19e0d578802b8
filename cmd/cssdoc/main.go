package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inkpath/css/parser"
	"github.com/inkpath/css/scanner"
)

var (
	testURL string

	logger *zap.Logger
)

var (
	fileStyle  = color.New(color.FgCyan, color.Bold)
	ruleStyle  = color.New(color.FgYellow, color.Bold)
	matchStyle = color.New(color.FgGreen, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "cssdoc [files...]",
	Short: "List the conditional rules in CSS stylesheets",
	Long: `cssdoc extracts @media, @supports, and @document rules from stylesheets.
With --url, @document preludes are additionally tested against the URL.
Reads from stdin when no files are given.`,
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		if len(args) == 0 {
			failed = !listRules("<stdin>", os.Stdin)
		}
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				logger.Error("cannot open file", zap.String("path", path), zap.Error(err))
				failed = true
				continue
			}
			if !listRules(path, f) {
				failed = true
			}
			f.Close()
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().StringVar(&testURL, "url", "", "Report which @document rules match this URL")
}

func listRules(name string, r io.Reader) bool {
	rules, err := parser.ParseRules(scanner.New(r))
	if err != nil {
		logger.Warn("syntax errors in stylesheet", zap.String("file", name), zap.Error(err))
	}

	for _, rule := range rules {
		fmt.Printf("%s:%d: %s", fileStyle.Sprint(name), rule.Pos.Line+1, ruleStyle.Sprint("@"+rule.Name))
		if rule.Condition != nil {
			fmt.Printf(" %s", rule.Condition)
		}
		for i, fn := range rule.Functions {
			if i > 0 {
				fmt.Print(",")
			}
			fmt.Printf(" %s", fn)
		}
		if testURL != "" {
			for _, fn := range rule.Functions {
				if fn.Match(testURL) {
					fmt.Printf(" %s", matchStyle.Sprint("matches"))
					break
				}
			}
		}
		fmt.Println()
	}
	return err == nil
}

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
