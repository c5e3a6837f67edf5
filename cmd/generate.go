package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kilianp07/derby/app"
	"github.com/kilianp07/derby/config"
	"github.com/kilianp07/derby/core/ppn"
	"github.com/kilianp07/derby/infra/logger"
	"github.com/kilianp07/derby/pkg/export"
)

type generateOptions struct {
	lanes           int
	cars            int
	rounds          int
	balance         string
	avoidCompetitor string
	avoidLane       string
	format          string
	record          bool
	stats           bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a heat schedule",
		Long: "Generate a heat schedule for --cars competitors. Lanes, rounds and weights\n" +
			"default to the schedule section of the configuration.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(root.cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			p, err := o.params(cmd, cfg.Schedule)
			if err != nil {
				return err
			}
			var heats []ppn.Heat
			if o.record {
				svc, err := app.New(cfg)
				if err != nil {
					return err
				}
				defer func() {
					if err := svc.Close(); err != nil {
						logger.New("main").Errorf("service close: %v", err)
					}
				}()
				rec, err := svc.Schedule(cmd.Context(), app.Request{Params: p})
				if err != nil {
					return err
				}
				heats = rec.Heats
			} else {
				heats, err = ppn.Generate(p, logger.New("generate"))
				if err != nil {
					return err
				}
			}
			q := ppn.Evaluate(heats, p.Cars)
			doc := export.Schedule{
				Lanes:   ppn.EffectiveLanes(p.Lanes, p.Cars),
				Cars:    p.Cars,
				Heats:   heats,
				Quality: &q,
			}
			if err := export.Write(cmd.OutOrStdout(), o.format, doc); err != nil {
				return err
			}
			if o.stats {
				return writeStats(cmd.ErrOrStderr(), q)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&o.lanes, "lanes", "l", 0, "number of lanes (2-6)")
	f.IntVarP(&o.cars, "cars", "n", 0, "number of competitors (2-200)")
	f.IntVarP(&o.rounds, "rounds", "r", 0, "rounds, each competitor races once per lane per round")
	f.StringVar(&o.balance, "balance", "", "weight keeping race counts even (zero|light|medium|heavy|N)")
	f.StringVar(&o.avoidCompetitor, "avoid-competitor", "", "weight against racing in back-to-back heats")
	f.StringVar(&o.avoidLane, "avoid-lane", "", "weight against keeping a lane in back-to-back heats")
	f.StringVarP(&o.format, "format", "f", export.FormatTable, "output format: table, json, csv or yaml")
	f.BoolVar(&o.record, "record", false, "store, measure and publish the schedule as the server does")
	f.BoolVar(&o.stats, "stats", false, "print schedule quality to stderr")
	_ = cmd.MarkFlagRequired("cars")
	return cmd
}

// params merges explicitly set flags over the configured defaults.
func (o *generateOptions) params(cmd *cobra.Command, def config.ScheduleConfig) (ppn.Params, error) {
	p := ppn.Params{Lanes: def.Lanes, Cars: o.cars, Rounds: def.Rounds, Weights: def.Weights}
	f := cmd.Flags()
	if f.Changed("lanes") {
		p.Lanes = o.lanes
	}
	if f.Changed("rounds") {
		p.Rounds = o.rounds
	}
	weights := []struct {
		flag string
		val  string
		dst  *ppn.Weight
	}{
		{"balance", o.balance, &p.Weights.Balance},
		{"avoid-competitor", o.avoidCompetitor, &p.Weights.AvoidCompetitor},
		{"avoid-lane", o.avoidLane, &p.Weights.AvoidLane},
	}
	for _, w := range weights {
		if !f.Changed(w.flag) {
			continue
		}
		v, err := ppn.ParseWeight(w.val)
		if err != nil {
			return p, fmt.Errorf("--%s: %w", w.flag, err)
		}
		*w.dst = v
	}
	return p, nil
}

func writeStats(w io.Writer, q ppn.Quality) error {
	_, err := fmt.Fprintf(w, "heats: %d  races per car: mean %.2f variance %.3f  back-to-back: %d  same lane: %d\n",
		q.Heats, q.MeanRaces, q.RaceVariance, q.CompetitorRepeats, q.LaneRepeats)
	return err
}
