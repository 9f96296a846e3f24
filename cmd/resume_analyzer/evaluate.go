package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	evaluateRole     string
	evaluateLevel    string
	evaluateJobFile  string
	evaluateKeywords []string
	evaluateJSON     bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <resume.json>",
	Short: "Run a comprehensive analysis on a parsed resume",
	Long: `Evaluate reads a parsed resume (JSON ResumeRecord) and prints the full
analysis: score breakdown, issues by severity, keyword match, ATS simulation,
and a confidence interval for the overall score.`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateRole, "role", "r", "", "Target role id (e.g. software-engineer)")
	evaluateCmd.Flags().StringVarP(&evaluateLevel, "level", "l", "", "Experience level (entry|mid|senior|lead|executive)")
	evaluateCmd.Flags().StringVarP(&evaluateJobFile, "job", "j", "", "Path to a job description file (text or HTML)")
	evaluateCmd.Flags().StringSliceVarP(&evaluateKeywords, "keyword", "k", nil, "Explicit keyword to match (repeatable, overrides --job extraction)")
	evaluateCmd.Flags().BoolVar(&evaluateJSON, "json", false, "Print the raw JSON result")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	jobDescription := ""
	if evaluateJobFile != "" {
		jd, err := os.ReadFile(evaluateJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobDescription = string(jd)
	}

	// CLI runs are quiet unless DEBUG is set; findings go to stdout.
	log := zap.NewNop()
	if cfg.Debug {
		log, err = logger.New(cfg.JSONLogs, true)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
	}

	a, err := buildAnalyzer(cfg, log)
	if err != nil {
		return err
	}

	result, err := a.ComprehensiveAnalysis(context.Background(), analyzer.Request{
		Record:         &record,
		Role:           evaluateRole,
		Level:          evaluateLevel,
		JobDescription: jobDescription,
		Keywords:       evaluateKeywords,
	})
	if err != nil {
		return err
	}

	if evaluateJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(cmd, result)
	return nil
}

func printResult(cmd *cobra.Command, result *analyzer.ComprehensiveResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Overall score: %.1f/100\n", result.OverallScore)
	fmt.Fprintf(out, "Confidence:    %.1f-%.1f (%s)\n\n",
		result.Confidence.Lower, result.Confidence.Upper, result.Confidence.Reliability)

	fmt.Fprintln(out, "Breakdown:")
	for _, c := range result.Breakdown.Components {
		fmt.Fprintf(out, "  %-16s %5.1f / %.0f\n", c.Name, c.Score, c.MaxScore)
	}

	if len(result.Keywords.Matched)+len(result.Keywords.Missing) > 0 {
		fmt.Fprintf(out, "\nKeywords (%s, %.0f%%):\n", result.Keywords.Tier, result.Keywords.MatchRate)
		if len(result.Keywords.Matched) > 0 {
			fmt.Fprintf(out, "  matched: %s\n", strings.Join(result.Keywords.Matched, ", "))
		}
		if len(result.Keywords.Missing) > 0 {
			fmt.Fprintf(out, "  missing: %s\n", strings.Join(result.Keywords.Missing, ", "))
		}
	}

	fmt.Fprintln(out, "\nATS simulation:")
	platforms := make([]string, 0, len(result.Simulation.Platforms))
	for name := range result.Simulation.Platforms {
		platforms = append(platforms, name)
	}
	sort.Strings(platforms)
	for _, name := range platforms {
		p := result.Simulation.Platforms[name]
		fmt.Fprintf(out, "  %-12s %5.1f%% (%s)\n", name, p.PassProbability, p.Rating)
	}
	fmt.Fprintf(out, "  overall      %5.1f%% (%d/%d passed)\n",
		result.Simulation.OverallScore, result.Simulation.PlatformsPassed, len(platforms))

	printIssues(out, "Critical", result.Issues.Critical)
	printIssues(out, "Warnings", result.Issues.Warnings)
	printIssues(out, "Suggestions", result.Issues.Suggestions)
}

func printIssues(out io.Writer, heading string, issues []types.Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s:\n", heading)
	for _, issue := range issues {
		fmt.Fprintf(out, "  [%s] %s\n", issue.Category, issue.Message)
		if issue.Fix != "" {
			fmt.Fprintf(out, "      fix: %s\n", issue.Fix)
		}
	}
}
