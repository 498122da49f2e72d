package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/coolbeans/vitae/pkg/logger"
	"github.com/coolbeans/vitae/pkg/pipeline"
	"github.com/coolbeans/vitae/pkg/section"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "vitae",
		Short: "Heuristic resume text parser",
		Long: `vitae turns raw text recovered from a resume document into a
structured JSON document: contact details, experience, education,
skills, projects, certificates, and more.

Parsing is deterministic and rule-based: positional and lexical
heuristics over plain text, no external services.`,
		Version: version,
	}

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json-logs", "j", false, "json format for logging")
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("json-logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.SetEnvPrefix("vitae")
	viper.AutomaticEnv()

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(sectionsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <text-file>",
		Short: "Parse extracted resume text into structured JSON",
		Long: `Parse a plain-text file holding extracted resume text and print the
structured document as JSON.

Example:
  vitae parse resume.txt
  vitae parse resume.txt --pretty --output parsed.json
  vitae parse resume.txt --vocabulary headers.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			outputPath, _ := cmd.Flags().GetString("output")
			pretty, _ := cmd.Flags().GetBool("pretty")

			p, err := buildPipeline(cmd, log)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading input file: %w", err)
			}

			doc, err := p.Run(string(raw))
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			var encoded []byte
			if pretty {
				encoded, err = json.MarshalIndent(doc, "", "  ")
			} else {
				encoded, err = json.Marshal(doc)
			}
			if err != nil {
				return fmt.Errorf("encoding document: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, append(encoded, '\n'), 0644); err != nil {
					return fmt.Errorf("writing output file: %w", err)
				}
				log.Info("document written",
					zap.String("path", outputPath),
					zap.Int("experience_entries", len(doc.Experience)),
					zap.Int("education_entries", len(doc.Education)),
				)
				return nil
			}

			fmt.Println(string(encoded))
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "write JSON to a file instead of stdout")
	cmd.Flags().Bool("pretty", false, "indent the JSON output")
	cmd.Flags().String("vocabulary", "", "YAML file with extra section header synonyms")
	return cmd
}

func sectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections <text-file>",
		Short: "Show how the segmenter splits a resume into sections",
		Long: `Print the section blocks the segmenter recognizes in a text file,
for debugging resumes whose headers are not being picked up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			p, err := buildPipeline(cmd, log)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading input file: %w", err)
			}

			blocks, err := p.Segment(string(raw))
			if err != nil {
				return fmt.Errorf("segmenting %s: %w", args[0], err)
			}

			for _, block := range blocks {
				header := block.Header
				if header == "" {
					header = "(implicit)"
				}
				fmt.Printf("%-14s %-30s %d lines\n", block.Name, header, len(block.Lines))
				for _, line := range block.Lines {
					fmt.Printf("    %s\n", line)
				}
			}
			return nil
		},
	}
	cmd.Flags().String("vocabulary", "", "YAML file with extra section header synonyms")
	return cmd
}

func buildLogger() (*zap.Logger, error) {
	log, err := logger.New(viper.GetBool("json-logs"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return log, nil
}

func buildPipeline(cmd *cobra.Command, log *zap.Logger) (*pipeline.Pipeline, error) {
	opts := []pipeline.Option{pipeline.WithLogger(log)}

	vocabPath, _ := cmd.Flags().GetString("vocabulary")
	if vocabPath != "" {
		vocab, err := section.LoadVocabulary(vocabPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pipeline.WithVocabulary(vocab))
	}

	return pipeline.New(opts...), nil
}
