package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/leafiz/internal/store"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress and analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		fileCfg, err := loadFileConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPath, err := resolveDBPath(cmd, fileCfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if !resetYes {
			fmt.Printf("This erases all progress in %s. Type 'yes' to continue: ", dbPath)
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Delete(store.KeyProfile); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		if err := st.Delete(store.KeyAnalytics); err != nil {
			return fmt.Errorf("delete analytics: %w", err)
		}

		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
}
