package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/engine"
	"github.com/spf13/cobra"
)

var renderExample = `# render an electron mass at every configured rounding level
%[1]s render --kind mass '9.1093837015 \times 10^{-31} kg'

# render a charge at three significant figures as LaTeX
%[1]s render --kind charge --sig-figs 3 --output latex -- '-1/3'
`

// Render output formats.
const (
	OutputText  = "text"
	OutputLaTeX = "latex"
	OutputJSON  = "json"
)

// RenderOptions holds the flags of the render command.
type RenderOptions struct {
	*RootOptions

	Kind    string
	SigFigs int
	Output  string
	Text    string

	kind domain.Kind
}

// NewCmdRender returns the render subcommand.
func NewCmdRender(parent string, root *RootOptions) *cobra.Command {
	o := &RenderOptions{RootOptions: root, SigFigs: -1, Output: OutputText}

	cmd := &cobra.Command{
		Use:     "render --kind KIND TEXT",
		Short:   "Render one quantity in every unit system and rounding level",
		Example: fmt.Sprintf(renderExample, parent),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			o.Text = strings.Join(args, " ")
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}

	cmd.Flags().StringVarP(&o.Kind, "kind", "k", "", "quantity kind. One of: mass, charge, time, magneticMoment.")
	cmd.Flags().IntVar(&o.SigFigs, "sig-figs", o.SigFigs, "render a single significant-figure level instead of the configured levels. 0 means unrounded.")
	cmd.Flags().StringVarP(&o.Output, "output", "o", o.Output, "output format. One of: text, latex, json.")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

// Validate checks the flags.
func (o *RenderOptions) Validate() error {
	kind, err := domain.ParseKind(o.Kind)
	if err != nil {
		return err
	}
	o.kind = kind

	switch o.Output {
	case OutputText, OutputLaTeX, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q", o.Output)
	}

	if o.SigFigs < -1 {
		return errors.New("--sig-figs must not be negative")
	}
	return nil
}

// Run renders the quantity and writes it to Out.
func (o *RenderOptions) Run() error {
	e, err := o.Engine()
	if err != nil {
		return err
	}

	var records []domain.Record
	if o.SigFigs < 0 {
		records, err = e.RenderField(o.kind, o.Text)
	} else {
		records, err = o.renderLevel(e, o.SigFigs)
	}
	if err != nil {
		return err
	}

	switch o.Output {
	case OutputJSON:
		enc := json.NewEncoder(o.Out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(records)

	case OutputLaTeX:
		for _, r := range records {
			fmt.Fprintf(o.Out, "%-5s %s\n", r.Rounding, r.LaTeX)
		}

	default:
		for _, r := range records {
			fmt.Fprintf(o.Out, "%-5s %s\n", r.Rounding, r.HTML)
		}
	}
	return nil
}

// renderLevel renders every representation of the quantity at one level.
func (o *RenderOptions) renderLevel(e *engine.Engine, sigFigs int) ([]domain.Record, error) {
	q, err := e.Parse(o.kind, o.Text)
	if err != nil {
		return nil, err
	}
	representations, err := e.Representations(q)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(representations))
	for _, rep := range representations {
		m, err := e.Normalize(rep)
		if err != nil {
			return nil, err
		}
		r, err := e.Render(m, sigFigs)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
