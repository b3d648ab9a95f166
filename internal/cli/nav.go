package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/nav"
)

// navCommand creates the nav command for directional neighbour queries.
func (c *CLI) navCommand() *cobra.Command {
	var flags sceneFlags

	cmd := &cobra.Command{
		Use:   "nav [scene.toml] [token] [direction]",
		Short: "Find the neighbour of a widget",
		Long: `Find the nearest active widget in a direction.

With a direction (left, right, up, down) the neighbour's token is printed,
or -1 when there is none. Without one, all four neighbours are listed.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("token must be an integer: %q", args[1])
			}
			m, err := c.buildScene(args[0], flags)
			if err != nil {
				return err
			}
			if _, ok := m.Find(token); !ok {
				return fmt.Errorf("token %d is not in %s", token, args[0])
			}

			if len(args) == 3 {
				dir, err := nav.ParseDirection(args[2])
				if err != nil {
					return err
				}
				fmt.Println(m.Neighbor(token, dir))
				return nil
			}
			for _, dir := range nav.Directions {
				printKeyValue(dir.String(), tokenString(m.Neighbor(token, dir)))
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// hitCommand creates the hit command for pointer queries.
func (c *CLI) hitCommand() *cobra.Command {
	var flags sceneFlags

	cmd := &cobra.Command{
		Use:   "hit [scene.toml] [x] [y]",
		Short: "Find the widget under a point",
		Long: `Print the token of the active widget containing the point (x, y) in
container pixels, or -1 when the point hits no active widget.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, errX := strconv.Atoi(args[1])
			y, errY := strconv.Atoi(args[2])
			if errX != nil || errY != nil {
				return fmt.Errorf("x and y must be integers")
			}
			m, err := c.buildScene(args[0], flags)
			if err != nil {
				return err
			}
			fmt.Println(m.HitTest(x, y))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func tokenString(token int) string {
	if token == manager.None {
		return StyleDim.Render("none")
	}
	return StyleNumber.Render(strconv.Itoa(token))
}
