package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/skills"
	"jobtrack-engine/internal/textutil"
)

var (
	skillsConfigFile string
	skillsVocabFile  string
	skillsJSON       bool
	skillsWorkers    int
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Extract and rank skills from job descriptions",
}

var skillsExtractCmd = &cobra.Command{
	Use:   "extract [file|-]",
	Short: "List the skills found in one description",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSkillsExtract,
}

var skillsRankCmd = &cobra.Command{
	Use:   "rank <files...>",
	Short: "Rank skills by how many descriptions mention them",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSkillsRank,
}

var skillsVocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Print the vocabulary and exclusion rules",
	Args:  cobra.NoArgs,
	RunE:  runSkillsVocab,
}

func init() {
	skillsCmd.PersistentFlags().StringVar(&skillsConfigFile, "config", "", "config file whose skills section builds the vocabulary")
	skillsCmd.PersistentFlags().StringVar(&skillsVocabFile, "vocab", "", "vocabulary yaml file (overrides --config)")
	skillsCmd.PersistentFlags().BoolVar(&skillsJSON, "json", false, "print JSON")
	skillsRankCmd.Flags().IntVar(&skillsWorkers, "workers", 0, "parallel extraction workers (0 = GOMAXPROCS)")

	skillsCmd.AddCommand(skillsExtractCmd, skillsRankCmd, skillsVocabCmd)
	rootCmd.AddCommand(skillsCmd)
}

func loadVocabulary() (*skills.Vocabulary, error) {
	switch {
	case skillsVocabFile != "":
		return skills.LoadVocabularyFile(skillsVocabFile)
	case skillsConfigFile != "":
		cfg, err := config.Load(skillsConfigFile)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", skillsConfigFile, err)
		}
		return config.BuildVocabulary(cfg)
	default:
		return skills.Default(), nil
	}
}

// readDescription reads a file, or stdin for "-" or no argument. HTML is
// converted to text first.
func readDescription(cmd *cobra.Command, path string) (string, error) {
	var b []byte
	var err error
	if path == "" || path == "-" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	return textutil.Description(string(b)), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runSkillsExtract(cmd *cobra.Command, args []string) error {
	vocab, err := loadVocabulary()
	if err != nil {
		return err
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	text, err := readDescription(cmd, path)
	if err != nil {
		return err
	}

	found := skills.NewExtractor(vocab).Extract(text)
	out := cmd.OutOrStdout()
	if skillsJSON {
		return printJSON(out, map[string][]string{"skills": found})
	}
	for _, s := range skills.Display(found) {
		fmt.Fprintln(out, s)
	}
	return nil
}

func runSkillsRank(cmd *cobra.Command, args []string) error {
	vocab, err := loadVocabulary()
	if err != nil {
		return err
	}
	texts := make([]string, len(args))
	for i, p := range args {
		if texts[i], err = readDescription(cmd, p); err != nil {
			return err
		}
	}

	entries, err := skills.NewExtractor(vocab).AggregateConcurrent(cmd.Context(), texts, skillsWorkers)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if skillsJSON {
		names, counts := skills.Split(entries)
		return printJSON(out, map[string]any{
			"entries":           entries,
			"sortedSkills":      names,
			"sortedFrequencies": counts,
		})
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SKILL\tJOBS")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\n", e.Skill, e.Count)
	}
	return tw.Flush()
}

func runSkillsVocab(cmd *cobra.Command, _ []string) error {
	vocab, err := loadVocabulary()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if skillsJSON {
		return printJSON(out, map[string]any{
			"terms":      vocab.Terms(),
			"exclusions": vocab.Rules(),
		})
	}
	for _, t := range vocab.Terms() {
		fmt.Fprintln(out, t)
	}
	return nil
}
