package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmuller/led-matrix-enclosure/pkg/panel"
)

// newProfilesCmd creates the profiles command listing the panel profiles a
// layout token can name.
func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the supported panel profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Panel profiles"))
			for _, name := range panel.ProfileNames() {
				p, err := panel.LookupProfile(name)
				if err != nil {
					return err
				}
				fmt.Println(StyleHighlight.Render(name))
				printDetail("%s, %g mm pitch, %g mm min clearance, %d connectors",
					p.Size(), p.PixelSize, p.MinHeight, len(p.Connectors))
			}
			return nil
		},
	}
}
