package main

import (
	"context"
	"fmt"
	"os"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogExample = `# compile a particle document to stdout
%[1]s catalog particles.yaml

# compile with eight workers and write the database to a file
%[1]s catalog --workers 8 --output-file particles.json particles.yaml
`

// CatalogOptions holds the flags of the catalog command.
type CatalogOptions struct {
	*RootOptions

	Path       string
	OutputFile string
	Workers    int
	Strict     bool
}

// NewCmdCatalog returns the catalog subcommand.
func NewCmdCatalog(parent string, root *RootOptions) *cobra.Command {
	o := &CatalogOptions{RootOptions: root}

	cmd := &cobra.Command{
		Use:     "catalog FILE",
		Short:   "Compile a YAML or JSON particle document into the particle database",
		Example: fmt.Sprintf(catalogExample, parent),
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			o.Path = args[0]
			return o.Run(c.Context())
		},
	}

	cmd.Flags().StringVarP(&o.OutputFile, "output-file", "f", "", "write the database to this file instead of stdout.")
	cmd.Flags().IntVar(&o.Workers, "workers", 0, "number of records compiled concurrently. Defaults to catalog.workers from the configuration.")
	cmd.Flags().BoolVar(&o.Strict, "strict", false, "fail when any field cannot be parsed.")

	return cmd
}

// Run compiles the document and writes the database.
func (o *CatalogOptions) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	e, err := o.Engine()
	if err != nil {
		return err
	}

	workers := o.Config.Catalog.Workers
	if o.Workers > 0 {
		workers = o.Workers
	}
	compiler := catalog.NewCompiler(e, workers, o.Logger)

	results, err := compiler.CompileFile(ctx, o.Path)
	if err != nil {
		return err
	}

	aborted, unparsed := 0, 0
	for _, r := range results {
		if r.Err != nil {
			aborted++
			fmt.Fprintf(o.ErrOut, "%v\n", r.Err)
			continue
		}
		for _, fe := range r.FieldErrors {
			unparsed++
			fmt.Fprintf(o.ErrOut, "%s: %s: %s\n", fe.Reference, fe.Field, fe.Message)
		}
	}

	if o.Strict && unparsed > 0 {
		return fmt.Errorf("%d fields could not be parsed", unparsed)
	}

	if err := o.write(catalog.NewDatabase(results)); err != nil {
		return err
	}

	if aborted > 0 {
		return fmt.Errorf("%d of %d records could not be compiled", aborted, len(results))
	}
	return nil
}

func (o *CatalogOptions) write(db catalog.Database) error {
	if o.OutputFile == "" {
		return catalog.WriteDatabase(o.Out, db)
	}

	f, err := os.Create(o.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", o.OutputFile, err)
	}
	if err := catalog.WriteDatabase(f, db); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
