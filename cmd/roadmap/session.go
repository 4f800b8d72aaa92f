package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TudorHulban/roadmap"
	"github.com/TudorHulban/roadmap/internal/backlog"
	"github.com/TudorHulban/roadmap/internal/config"
	"github.com/TudorHulban/roadmap/internal/logging"
	"github.com/TudorHulban/roadmap/internal/render"
)

const (
	flagConfig   = "config"
	flagBacklog  = "backlog"
	flagLogLevel = "log-level"
	flagLogDir   = "log-dir"
	flagTeamSize = "team-size"
	flagStart    = "start"
	flagFormat   = "format"
)

// flagKeys maps command line flags onto config keys, flags win over file and environment.
var flagKeys = map[string]string{
	flagBacklog:  config.KeyBacklogPath,
	flagLogLevel: config.KeyLogLevel,
	flagLogDir:   config.KeyLogDir,
	flagTeamSize: config.KeyTeamSize,
	flagStart:    config.KeyStartDate,
	flagFormat:   config.KeyOutputFormat,
}

// session is what every command needs once flags are parsed.
type session struct {
	cfg    *config.Config
	logger *logging.Logger
	store  *backlog.Store
}

func openSession(cmd *cobra.Command) (*session, error) {
	configFile, _ := cmd.Flags().GetString(flagConfig)

	v, errViper := config.New(configFile)
	if errViper != nil {
		return nil,
			fmt.Errorf("read config: %w", errViper)
	}

	if errBind := bindFlags(v, cmd); errBind != nil {
		return nil,
			errBind
	}

	cfg, errLoad := config.Load(v)
	if errLoad != nil {
		return nil,
			fmt.Errorf("load config: %w", errLoad)
	}

	logger, errLogger := cfg.NewLogger()
	if errLogger != nil {
		return nil,
			errLogger
	}

	store, errStore := backlog.NewStore(cfg.Backlog.Path)
	if errStore != nil {
		_ = logger.Close()

		return nil,
			errStore
	}

	logger.With("command", cmd.CommandPath()).
		Debug(
			"session opened",
			"backlog", store.Path(),
			"config", v.ConfigFileUsed(),
		)

	return &session{
			cfg:    cfg,
			logger: logger,
			store:  store,
		},
		nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flagName, key := range flagKeys {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			continue
		}

		if errBind := v.BindPFlag(key, flag); errBind != nil {
			return fmt.Errorf("bind flag %s: %w", flagName, errBind)
		}
	}

	return nil
}

func (s *session) Close() {
	_ = s.logger.Close()
}

// buildDocument loads the backlog, schedules it and labels the result.
func (s *session) buildDocument() (*render.Document, error) {
	items, errLoad := s.store.Load()
	if errLoad != nil {
		s.logger.WithPhase("load").Error("backlog unreadable", "path", s.store.Path(), "error", errLoad)

		return nil,
			errLoad
	}

	startDate, errStart := s.cfg.StartDate(time.Now())
	if errStart != nil {
		return nil,
			errStart
	}

	request := roadmap.ScheduleRequest{
		StartDate: startDate,
		Items:     items,
		TeamSize:  s.cfg.Team.Size,
	}

	log := s.logger.WithPhase("schedule")

	log.Info(
		"generating roadmap",
		"team_size", request.TeamSize,
		"items", len(items),
		"start", startDate.Format(render.DateLayout),
	)

	grid, errSchedule := request.GenerateRoadmap()
	if errSchedule != nil {
		log.Error("scheduling failed", "error", errSchedule)

		return nil,
			errSchedule
	}

	for ix, week := range grid {
		log.Debug(
			"week allocated",
			"week", ix+1,
			"assigned", week.Assigned(),
			"slots", slotNames(week),
		)
	}

	return render.NewDocument(
		&render.ParamsNewDocument{
			StartDate: startDate,
			Roadmap:   grid,
			Palette:   s.cfg.Output.Palette,
			TeamSize:  request.TeamSize,
		},
	)
}

func slotNames(week roadmap.Week) []string {
	result := make([]string, len(week))

	for ix, slot := range week {
		result[ix] = slot.String()
	}

	return result
}
