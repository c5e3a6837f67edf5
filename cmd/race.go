package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/derby/app"
	"github.com/kilianp07/derby/config"
	"github.com/kilianp07/derby/core/model"
	"github.com/kilianp07/derby/core/race"
	"github.com/kilianp07/derby/infra/logger"
	"github.com/kilianp07/derby/infra/roster"
)

type raceOptions struct {
	rosterPath  string
	resultsPath string
	title       string
	lanes       int
	rounds      int
}

func newRaceCmd(root *rootOptions) *cobra.Command {
	o := &raceOptions{}
	cmd := &cobra.Command{
		Use:   "race",
		Short: "Plan a race from a roster and optionally score it",
		Long: "Plan the heats for every vehicle in --roster (csv vin,owner,group or yaml).\n" +
			"With --results, heat,lane,position records are applied and the standings printed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(root.cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := logger.New("race")
			vehicles, err := roster.Load(o.rosterPath)
			if err != nil {
				if len(vehicles) == 0 {
					return fmt.Errorf("roster: %w", err)
				}
				log.Warnf("roster: %v", err)
			}

			lanes := cfg.Schedule.Lanes
			if cmd.Flags().Changed("lanes") {
				lanes = o.lanes
			}
			r := model.NewRace(o.title, lanes, log)
			r.Weights = cfg.Schedule.Weights
			r.Rounds = cfg.Schedule.Rounds
			if cmd.Flags().Changed("rounds") {
				r.Rounds = o.rounds
			}
			for _, v := range vehicles {
				r.AddVehicle(v.ID)
			}

			svc, err := app.New(cfg, app.WithLogger(log))
			if err != nil {
				return err
			}
			defer func() {
				if err := svc.Close(); err != nil {
					log.Errorf("service close: %v", err)
				}
			}()
			card, _, err := svc.PlanRace(cmd.Context(), r, vehicles)
			if err != nil {
				return err
			}
			if o.resultsPath == "" {
				return race.WriteCard(cmd.OutOrStdout(), card)
			}
			f, err := os.Open(o.resultsPath)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			if err := race.ReadResults(f, card); err != nil {
				log.Warnf("results: %v", err)
			}
			return race.WriteResults(cmd.OutOrStdout(), card)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.rosterPath, "roster", "", "roster file")
	f.StringVar(&o.resultsPath, "results", "", "results file with heat,lane,position records")
	f.StringVarP(&o.title, "title", "t", "Race", "race title")
	f.IntVarP(&o.lanes, "lanes", "l", model.DefaultLanes, "number of lanes (2-6)")
	f.IntVarP(&o.rounds, "rounds", "r", 1, "rounds")
	_ = cmd.MarkFlagRequired("roster")
	return cmd
}
