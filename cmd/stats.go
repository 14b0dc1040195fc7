package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/leafiz/internal/analytics"
	"github.com/abhisek/leafiz/internal/catalog"
	"github.com/abhisek/leafiz/internal/progress"
	"github.com/abhisek/leafiz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		fileCfg, err := loadFileConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		cat, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("load plant catalog: %w", err)
		}

		dbPath, err := resolveDBPath(cmd, fileCfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		prog := progress.Load(st, cat)
		tracker := analytics.Load(st)
		profile := prog.Profile()

		fmt.Printf("High score:     %d\n", profile.HighScore)
		fmt.Printf("Games played:   %d\n", profile.GamesPlayed)
		fmt.Printf("Daily streak:   %d\n", profile.DailyStreak)
		fmt.Printf("Best streak:    %d in a row\n", profile.BestStreak)
		fmt.Printf("Answered:       %d (%d correct, %.0f%%)\n",
			profile.TotalAnswered, profile.TotalCorrect, profile.Accuracy()*100)
		fmt.Printf("Mastered:       %d/%d plants\n", prog.MasteredCount(), cat.Len())

		if ranking := tracker.MostDifficult(5); len(ranking) > 0 {
			fmt.Println("\nTrickiest plants:")
			for _, d := range ranking {
				name := d.ItemID
				if item, ok := cat.Get(d.ItemID); ok {
					name = item.ScientificName
				}
				fmt.Printf("  %-28s %3.0f%% missed over %d tries\n",
					name, d.ErrorRate*100, d.Attempts)
			}
		}

		return nil
	},
}
