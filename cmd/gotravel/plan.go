package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/client"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/fingerprint"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/flow"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/picker"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/planner"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/session"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a trip and submit it",
	Long: `Plan walks through the trip form, the image selection and the review
summary, then submits the confirmed trip to the configured backend.`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.ImageDir == "" {
		return fmt.Errorf("no image source configured: set image_dir in the config file or the IMAGE_DIR environment variable")
	}

	sessions := session.NewFileStore(cfg.SessionFile)
	api := client.New(cfg.APIBaseURL,
		client.WithSessionStore(sessions),
		client.WithLogger(logger),
		client.WithHTTPClient(&http.Client{
			Timeout:   cfg.HTTPTimeout,
			Transport: client.NewLoggingTransport(nil, logger),
		}),
	)

	sess := flow.NewSession(api, fingerprint.NewHost(), flow.WithLogger(logger))
	runner := &planner.Runner{
		Input:  cmd.InOrStdin(),
		Output: cmd.OutOrStdout(),
		Picker: picker.NewDir(cfg.ImageDir),
	}

	resp, err := runner.Run(cmd.Context(), sess)
	if err != nil {
		return err
	}
	if resp.TripID != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Trip saved with id %s\n", resp.TripID)
	}
	return nil
}
