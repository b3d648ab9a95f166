package manager_test

import (
	"fmt"

	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/widget"
)

func Example() {
	m, _ := manager.New(manager.WithContainer(100, 100))

	st := widget.DefaultState()
	st.Active = true
	_ = m.Add(1, 40, 10, st)
	_ = m.Add(2, 40, 10, st)
	_ = m.Add(3, 40, 10, st)
	_ = m.Layout(layout.AreaCenter)

	fmt.Println(m.Lines())
	fmt.Println(m.Below(1), m.RightOf(1), m.LeftOf(1))
	// Output:
	// [[1 2] [3]]
	// 3 2 -1
}
