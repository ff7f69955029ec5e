package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/realtransducer/builder"
	"github.com/katalvlaran/realtransducer/generator"
	"github.com/katalvlaran/realtransducer/periodic"
	"github.com/katalvlaran/realtransducer/record"
	"github.com/katalvlaran/realtransducer/transducer"
)

// genFlags are the enumeration flags shared by generate and minimal.
type genFlags struct {
	maxStates int
	limit     int
	bits      int
}

func (g *genFlags) register(cmd *cobra.Command, withBits bool) {
	cmd.Flags().IntVar(&g.maxStates, "max-states", 0, "largest machine size (default from config)")
	cmd.Flags().IntVar(&g.limit, "limit", -1, "stop after this many results, 0 for no cap (default from config)")
	g.bits = -1
	if withBits {
		cmd.Flags().IntVar(&g.bits, "bits", -1, "input length for behavior fingerprints (default from config)")
	}
}

// resolve merges explicit flags over the config and checks the result
// against the config bounds.
func (g *genFlags) resolve(a *app) (GenerateConfig, error) {
	c := a.cfg.Generate
	if g.maxStates > 0 {
		c.MaxStates = g.maxStates
	}
	if g.limit >= 0 {
		c.Limit = g.limit
	}
	if g.bits >= 0 {
		c.Bits = g.bits
	}

	return c, c.validate()
}

// resolveBits applies an explicit --bits flag over the config.
func resolveBits(a *app, bits int) (int, error) {
	c := a.cfg.Generate
	if bits >= 0 {
		c.Bits = bits
	}

	return c.Bits, c.validate()
}

func generatorOptions(c GenerateConfig, a *app, m *generator.Metrics) []generator.Option {
	return []generator.Option{
		generator.WithMaxStates(c.MaxStates),
		generator.WithLimit(c.Limit),
		generator.WithBits(c.Bits),
		generator.WithWorkers(c.Workers),
		generator.WithLogger(a.logger),
		generator.WithMetrics(m),
	}
}

func newGenerateCmd(a *app) *cobra.Command {
	var gf genFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Enumerate valid machines by size and store them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := prometheus.NewRegistry()
			metrics, err := generator.NewMetrics(reg)
			if err != nil {
				return err
			}
			c, err := gf.resolve(a)
			if err != nil {
				return err
			}
			machines, err := generator.Generate(cmd.Context(), generatorOptions(c, a, metrics)...)
			if err != nil {
				return err
			}
			first, last := uint64(0), uint64(0)
			for _, m := range machines {
				id, err := a.store.Append(cmd.Context(), m.Record())
				if err != nil {
					return err
				}
				if first == 0 {
					first = id
				}
				last = id
			}
			a.logger.Info("rtrans: generated", "machines", len(machines), "first_id", first, "last_id", last)
			fmt.Fprintf(cmd.OutOrStdout(), "stored %d machines", len(machines))
			if len(machines) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " as #%d..#%d", first, last)
			}
			fmt.Fprintln(cmd.OutOrStdout())

			return writeMetrics(cmd.OutOrStdout(), reg)
		},
	}
	gf.register(cmd, false)

	return cmd
}

func newEvalCmd(a *app) *cobra.Command {
	var start int
	cmd := &cobra.Command{
		Use:   "eval ID INPUT",
		Short: "Evaluate a stored machine on a periodic input",
		Long: `Evaluate a stored machine on INPUT, written "initial[:period:]" or as a bare
binary word w, which stands for w[:0:].`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.machine(cmd, args[0])
			if err != nil {
				return err
			}
			in, err := periodic.Parse(args[1])
			if err != nil {
				return err
			}
			out, err := m.Evaluate(in, start)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s |--> %s\n", in, out)

			return nil
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "start state")

	return cmd
}

func newBehaviorCmd(a *app) *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "behavior ID",
		Short: "List a stored machine's output for every input of a given length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := resolveBits(a, bits)
			if err != nil {
				return err
			}
			m, err := a.machine(cmd, args[0])
			if err != nil {
				return err
			}
			behavior, err := m.InitialBehavior(n)
			if err != nil {
				return err
			}

			return writeBehavior(cmd.OutOrStdout(), n, behavior)
		},
	}
	cmd.Flags().IntVar(&bits, "bits", -1, "input length (default from config)")

	return cmd
}

func newClassifyCmd(a *app) *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Group stored machines by behavior",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := resolveBits(a, bits)
			if err != nil {
				return err
			}
			var ids []uint64
			var machines []*transducer.Automaton
			err = a.store.Iterate(cmd.Context(), func(id uint64, rec record.Record) error {
				m, err := transducer.FromRecord(rec)
				if err != nil {
					a.logger.Warn("rtrans: skipping invalid record", "id", id, "err", err)
					return nil
				}
				ids = append(ids, id)
				machines = append(machines, m)
				return nil
			})
			if err != nil {
				return err
			}
			classes, err := generator.Classify(cmd.Context(), machines,
				generator.WithBits(n),
				generator.WithWorkers(a.cfg.Generate.Workers),
			)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for k, c := range classes {
				members := make([]string, len(c.Members))
				for i, idx := range c.Members {
					members[i] = fmt.Sprintf("#%d", ids[idx])
				}
				fmt.Fprintf(w, "behavior %02d: %s\n", k, strings.Join(members, " "))
				if err = writeBehavior(w, n, c.Behavior); err != nil {
					return err
				}
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%d machines, %d behaviors\n", len(machines), len(classes))

			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", -1, "input length (default from config)")

	return cmd
}

func newMinimalCmd(a *app) *cobra.Command {
	var gf genFlags
	var save bool
	cmd := &cobra.Command{
		Use:   "minimal",
		Short: "Find a smallest machine for every distinct behavior",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := gf.resolve(a)
			if err != nil {
				return err
			}
			samples, err := generator.Minimal(cmd.Context(), generatorOptions(c, a, nil)...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for k, s := range samples {
				rec := s.Automaton.Record()
				fmt.Fprintf(w, "minimal %03d", k)
				if save {
					id, err := a.store.Append(cmd.Context(), rec)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, " (#%d)", id)
				}
				fmt.Fprintln(w)
				if err = record.WriteText(w, rec); err != nil {
					return err
				}
				fmt.Fprintln(w)
				if err = writeBehavior(w, c.Bits, s.Behavior); err != nil {
					return err
				}
				fmt.Fprintln(w)
			}

			return nil
		},
	}
	gf.register(cmd, true)
	cmd.Flags().BoolVar(&save, "save", false, "store the machines found")

	return cmd
}

func newBisimCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bisim ID1 ID2",
		Short: "Decide whether two stored machines are bisimilar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.machine(cmd, args[0])
			if err != nil {
				return err
			}
			y, err := a.machine(cmd, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), x.IsBisimilarTo(y))

			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var asYAML, routes bool
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print a stored machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.machine(cmd, args[0])
			if err != nil {
				return err
			}
			if routes {
				return writeRoutes(cmd.OutOrStdout(), m)
			}
			if !asYAML {
				return record.WriteText(cmd.OutOrStdout(), m.Record())
			}
			data, err := record.MarshalYAML(m.Record())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as YAML")
	cmd.Flags().BoolVar(&routes, "routes", false, "print a shortest route from state 0 to every state")

	return cmd
}

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [NAME]",
		Short: "List the built-in examples, or validate and store one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range builder.Names() {
					fmt.Fprintln(w, name)
				}
				return nil
			}
			con, err := builder.Named(args[0])
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(con)
			if err != nil {
				return err
			}
			m, err := transducer.New(g)
			if err != nil {
				return err
			}
			id, err := a.store.Append(cmd.Context(), m.Record())
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "stored %s as #%d\n", args[0], id)

			return nil
		},
	}
}

// writeRoutes prints "state: 0 -> ... -> state" for every state.
func writeRoutes(w io.Writer, m *transducer.Automaton) error {
	for q := 0; q < m.States(); q++ {
		route, err := m.Route(q)
		if err != nil {
			return err
		}
		hops := make([]string, len(route))
		for i, s := range route {
			hops[i] = strconv.Itoa(s)
		}
		if _, err = fmt.Fprintf(w, "%d: %s\n", q, strings.Join(hops, " -> ")); err != nil {
			return err
		}
	}

	return nil
}

// writeBehavior prints one "input |--> output" line per input word.
func writeBehavior(w io.Writer, bits int, behavior []periodic.Value) error {
	words, err := transducer.Inputs(bits)
	if err != nil {
		return err
	}
	if len(words) != len(behavior) {
		return fmt.Errorf("behavior has %d entries for %d inputs", len(behavior), len(words))
	}
	for i, word := range words {
		if _, err = fmt.Fprintf(w, "%s |--> %s\n", word, behavior[i]); err != nil {
			return err
		}
	}

	return nil
}

// writeMetrics prints every counter sample gathered from reg, sorted by name
// then labels.
func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("%s %g", name, m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err = fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}
