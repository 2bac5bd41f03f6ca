package wayfinder

import (
	"github.com/charmbracelet/log"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, focus changes are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event FocusEvent)
}

// FocusEvent carries focus change data for the ECS bridge.
type FocusEvent struct {
	Type     EventType
	EntityID uint32
	// Other is the entity on the other side of the change: the node that
	// lost focus for EventFocus, the node that gained it for EventBlur.
	Other uint32
}

// Scene owns the node tree, the focus pointer, key bindings and focus
// callbacks. It is not safe for concurrent use; drive it from the game loop.
type Scene struct {
	root    *Node
	focused *Node
	store   EntityStore
	debug   bool
	logger  *log.Logger

	nav  *Navigator[*Node]
	keys KeyBindings

	// ClearColor fills the screen before nodes are drawn.
	ClearColor Color
	// FocusColor replaces the focused node's Color when drawing.
	FocusColor Color

	handlers    handlerRegistry
	injectQueue []CompassDirection
	testRunner  *TestRunner
	updateFunc  func() error
}

// NewScene creates a new scene with a pre-created root container and the
// default configuration.
func NewScene() *Scene {
	s := &Scene{
		root:       NewContainer("root"),
		logger:     newLogger(),
		FocusColor: DefaultFocusColor,
	}
	s.ApplyConfig(DefaultConfig())
	return s
}

// ApplyConfig replaces the navigation tolerance and key bindings.
func (s *Scene) ApplyConfig(cfg Config) {
	s.keys = cfg.Keys
	s.nav = NewNavigator[*Node](sceneGraph{s}, NavigatorConfig{
		Epsilon: cfg.Epsilon,
		Logger:  s.logger,
	})
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Navigator returns the navigator bound to this scene.
func (s *Scene) Navigator() *Navigator[*Node] {
	return s.nav
}

// Focused returns the focused node, or nil.
func (s *Scene) Focused() *Node {
	return s.focused
}

// SetFocus moves focus to n. Passing nil clears focus. Blur callbacks for
// the previous node run before focus callbacks for n.
func (s *Scene) SetFocus(n *Node) {
	prev := s.focused
	if prev == n {
		return
	}
	s.focused = n
	s.logger.Debug("focus changed", "from", prev, "to", n)

	ctx := FocusContext{Node: n, Previous: prev}
	if n != nil {
		ctx.EntityID = n.EntityID
		ctx.UserData = n.UserData
	}
	if prev != nil && prev.OnBlur != nil {
		prev.OnBlur(ctx)
	}
	if n != nil && n.OnFocus != nil {
		n.OnFocus(ctx)
	}
	for _, h := range s.handlers.focusChange {
		h.fn(ctx)
	}
	s.emitFocusEvents(prev, n)
}

// MoveFocus moves focus one step in the given screen direction and reports
// whether focus changed.
func (s *Scene) MoveFocus(dir CompassDirection) bool {
	return s.Navigate(dir.Axis(), dir.Direction())
}

// Navigate moves focus one step along axis. Geometry reflects the latest
// node properties; no Update is needed in between.
func (s *Scene) Navigate(axis Axis, dir Direction) bool {
	return s.nav.Move(axis, dir)
}

// Update refreshes world transforms and processes at most one navigation
// command (injected or from the keyboard).
func (s *Scene) Update() {
	s.refreshTransforms()
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
}

// SetUpdateFunc sets a callback run by Run after each Scene.Update. A
// non-nil error ends the game loop; return ebiten.Termination to stop
// without reporting a failure.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetLogger replaces the scene logger. nil restores the default.
func (s *Scene) SetLogger(l *log.Logger) {
	if l == nil {
		l = newLogger()
	}
	s.logger = l
	if s.debug {
		l.SetLevel(log.DebugLevel)
	}
	s.nav.logger = l
}

// Logger returns the scene logger.
func (s *Scene) Logger() *log.Logger {
	return s.logger
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and every
// navigation step is logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		s.logger.SetLevel(log.DebugLevel)
	} else {
		s.logger.SetLevel(log.InfoLevel)
	}
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

func (s *Scene) refreshTransforms() {
	updateWorldTransform(s.root, identityTransform, false)
}

func (s *Scene) emitFocusEvents(prev, next *Node) {
	if s.store == nil {
		return
	}
	var prevID, nextID uint32
	if prev != nil {
		prevID = prev.EntityID
	}
	if next != nil {
		nextID = next.EntityID
	}
	if prevID != 0 {
		s.store.EmitEvent(FocusEvent{Type: EventBlur, EntityID: prevID, Other: nextID})
	}
	if nextID != 0 {
		s.store.EmitEvent(FocusEvent{Type: EventFocus, EntityID: nextID, Other: prevID})
	}
}

// --- Focus callbacks ---

type focusHandler struct {
	id uint32
	fn func(FocusContext)
}

type handlerRegistry struct {
	focusChange []focusHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.focusChange
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = focusHandler{}
			h.reg.focusChange = s[:len(s)-1]
			return
		}
	}
}

// OnFocusChange registers a scene-level callback fired after every focus change.
func (s *Scene) OnFocusChange(fn func(FocusContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.focusChange = append(s.handlers.focusChange, focusHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers}
}
