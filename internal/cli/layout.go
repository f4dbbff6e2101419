package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
	"github.com/pmuller/led-matrix-enclosure/pkg/panel"
	"github.com/pmuller/led-matrix-enclosure/pkg/pipeline"
)

// newLayoutCmd creates the layout command: resolve only, no geometry. It
// answers "what will this layout and split produce" in a second instead of
// a meshing run.
func newLayoutCmd() *cobra.Command {
	var split string

	cmd := &cobra.Command{
		Use:   "layout <row> [row...]",
		Short: "Show the module structure without building geometry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			composite, modules, err := pipeline.NewRunner(logger).Resolve(pipeline.Options{
				Layout: args,
				Split:  split,
				Logger: logger,
			})
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render("Enclosure"))
			printKeyValue("panels", fmt.Sprintf("%d", composite.PanelCount()))
			printKeyValue("size", composite.Size().String())
			printKeyValue("pixels", composite.Shape().String())
			printKeyValue("modules", fmt.Sprintf("%d", len(modules)))
			printNewline()
			printPanels(composite)
			printNewline()
			printModules(modules)
			return nil
		},
	}

	cmd.Flags().StringVarP(&split, "split", "s", pipeline.DefaultSplit, "module split as ColsxRows")
	return cmd
}

// printPanels lists each panel's resolved position in the global frame.
func printPanels(composite panel.Composite) {
	fmt.Println(StyleTitle.Render("Panels"))
	for _, p := range composite.Placements() {
		printDetail("row %d col %d: %s, %s mm at %s",
			p.Row, p.Col, p.Profile.Name, p.Rect.Size, p.Rect.Position)
	}
}

// printModules lists the derived structure of each module.
func printModules(modules []enclosure.Module) {
	for _, m := range modules {
		fmt.Println(StyleHighlight.Render(m.Label()))
		printDetail("inner %s at %s, cavity %g mm tall",
			m.Inner.Size, m.Inner.Position, m.InnerHeight)
		printDetail("borders %s, %d connectors, %d wire slots",
			m.Borders, len(m.Connectors), len(m.WireSlots))
	}
}
