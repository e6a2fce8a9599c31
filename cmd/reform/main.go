// reform is a line-oriented rewriting tool built on the go-reform library.
//
// It reads lines from standard input, parses each one against an input
// template, and re-emits the extracted fields through an output template:
//
//	echo "2024-01-15 INFO Hello" | reform '{date} {level} {message}' '{level}: {message}'
//	// Output: INFO: Hello
//
// Lines that do not match the input template are dropped silently; lines
// that fail to format are reported on stderr and processing continues.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/benjaminschreck/go-reform/pkg/reform"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "reform INPUT_TEMPLATE OUTPUT_TEMPLATE",
		Short: "Parse stdin line by line and reformat the extracted fields",
		Example: `  echo '2024-01-15 INFO Hello' | reform '{date} {level} {message}' '{level}: {message}'
  Output: INFO: Hello`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := compileRule(args[0], args[1])
			if err != nil {
				return err
			}
			return process(cmd, []rule{r})
		},
	}

	root.AddCommand(newBatchCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func newBatchCommand() *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Rewrite stdin using an ordered rule list from a YAML file",
		Long: `Batch mode loads an ordered list of match/emit template pairs from a
YAML rules file and applies them to every input line. The first rule
whose match template matches the whole line wins; lines no rule matches
are dropped.

Rules file format:

    rules:
      - match: "{date} {level} {message}"
        emit: "{level}: {message}"
      - match: "{level}: {message}"
        emit: "{message}"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadRules(rulesFile)
			if err != nil {
				return err
			}
			return process(cmd, rules)
		},
	}

	cmd.Flags().StringVarP(&rulesFile, "rules", "r", "", "YAML rules file (required)")
	cmd.MarkFlagRequired("rules")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reform version %s\n", version)
		},
	}
}

// rule is one compiled match/emit template pair.
type rule struct {
	parser    *reform.Parser
	formatter *reform.Formatter
}

func compileRule(match, emit string) (rule, error) {
	parser, err := reform.NewParser(match)
	if err != nil {
		return rule{}, fmt.Errorf("compiling input template: %w", err)
	}
	formatter, err := reform.NewFormatter(emit)
	if err != nil {
		return rule{}, fmt.Errorf("compiling output template: %w", err)
	}
	return rule{parser: parser, formatter: formatter}, nil
}

// rulesFile mirrors the YAML rules document.
type rulesFile struct {
	Rules []struct {
		Match string `yaml:"match"`
		Emit  string `yaml:"emit"`
	} `yaml:"rules"`
}

func loadRules(path string) ([]rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var doc rulesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s contains no rules", path)
	}

	rules := make([]rule, 0, len(doc.Rules))
	for i, r := range doc.Rules {
		compiled, err := compileRule(r.Match, r.Emit)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		rules = append(rules, compiled)
	}
	return rules, nil
}

// process applies the rule list to every line of the command's input.
// Lines no rule matches are dropped silently; parse and format failures
// on individual lines are downgraded to stderr warnings so a batch run
// always sees the whole input. Only an input read error fails the run.
func process(cmd *cobra.Command, rules []rule) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	for scanner.Scan() {
		line := scanner.Text()

		for _, r := range rules {
			result, err := r.parser.Match(line)
			if err != nil {
				fmt.Fprintf(errOut, "Error parsing line %q: %v\n", line, err)
				break
			}
			if result == nil {
				continue
			}

			output, err := r.formatter.FormatMap(result.Values())
			if err != nil {
				fmt.Fprintf(errOut, "Error formatting line %q: %v\n", line, err)
				break
			}
			fmt.Fprintln(out, output)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
