package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hri-lab/robot-survey/internal/catalog"
	"github.com/hri-lab/robot-survey/internal/config"
	"github.com/hri-lab/robot-survey/internal/events"
	"github.com/hri-lab/robot-survey/internal/session"
	"github.com/hri-lab/robot-survey/internal/tui"
	"github.com/hri-lab/robot-survey/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "survey",
	Short: "Robot perception survey",
	Long:  "Terminal survey that collects slider ratings of randomly sampled robot images and exports the responses as CSV or Excel.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSurvey(cmd)
	},
}

func init() {
	rootCmd.Flags().Int("robots", 0, "Robots to assess this session (overrides SURVEY_ROBOTS_PER_SESSION)")
	rootCmd.Flags().String("export-dir", "", "Directory for exported files (overrides SURVEY_EXPORT_DIR)")

	rootCmd.AddCommand(versionCmd)
}

func runSurvey(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if n, _ := cmd.Flags().GetInt("robots"); n > 0 {
		cfg.RobotsPerSession = n
	}
	if dir, _ := cmd.Flags().GetString("export-dir"); dir != "" {
		cfg.ExportDir = dir
	}

	var logger utils.Logger
	if cfg.Environment == "development" {
		logger = utils.NewDevelopmentLogger()
	} else {
		logger = utils.NewDefaultLogger()
	}
	slogger := utils.ToSlogLogger(logger)

	publisher := events.NewChannelEventPublisher(slogger)
	defer publisher.Close()

	// Advisory observer: log transitions as they happen. Never feeds back
	// into the session.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	messages, err := publisher.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to session events: %w", err)
	}
	go func() {
		for msg := range messages {
			logger.Debug("Session event observed",
				"event_type", msg.Metadata.Get("event_type"),
				"session_id", msg.Metadata.Get("session_id"))
			msg.Ack()
		}
	}()

	sess, err := session.New(catalog.DefaultRobots(), catalog.DefaultQuestions(), session.Config{
		RobotsPerSession: cfg.RobotsPerSession,
		ExportPrefix:     cfg.ExportPrefix,
		Logger:           logger,
		Publisher:        publisher,
	})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	return tui.Run(tui.Options{
		Session:   sess,
		BasePath:  cfg.BasePath,
		ExportDir: cfg.ExportDir,
	})
}
