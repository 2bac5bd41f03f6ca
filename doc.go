// Package wayfinder is a retained 2D scene graph with directional focus
// navigation for keyboard and gamepad driven interfaces, rendered with
// [Ebitengine].
//
// # Scene graph
//
// Every element is a [Node]. Nodes form a tree rooted at [Scene.Root].
// Children inherit their parent's transform. A node takes part in focus
// through its [FocusMode]:
//
//   - [FocusInput] nodes (text fields, buttons) are always focusable.
//   - [FocusScope] nodes are focusable while ScopeEnabled is set, and then
//     stand in for all of their children.
//   - Everything else is searched through but never focused.
//
//	row := wayfinder.NewContainer("row")
//	scene.Root().AddChild(row)
//	for i := 0; i < 3; i++ {
//		row.AddChild(wayfinder.NewInput(fmt.Sprint("item", i), 80, 40))
//	}
//	wayfinder.Arrange(row, wayfinder.LayoutSpec{Kind: wayfinder.LayoutRow, Spacing: 8})
//
// # Directional focus
//
// [Scene.MoveFocus] moves focus to the nearest focusable node in a screen
// direction. The search first looks at the focused node's siblings (and
// their subtrees) and only climbs to wider ancestors when nothing lies in
// that direction, so focus prefers the innermost enclosing container.
// Candidates are ranked by the gap between facing edges; near ties go to
// the candidate that overlaps the focused node on the other axis.
//
// The algorithm itself lives in [Navigator], which works over any tree that
// implements [SceneGraph]:
//
//	nav := wayfinder.NewNavigator[MyID](myTree, wayfinder.NavigatorConfig{})
//	if nav.Navigate(wayfinder.Right) {
//		// focus moved
//	}
//
// # Input
//
// [Scene.Update] polls the bound keys (arrow keys by default, see
// [LoadConfig]) and moves focus. [Scene.InjectMove] and [TestRunner] drive
// the same path without a keyboard.
//
// [Ebitengine]: https://ebitengine.org
package wayfinder
