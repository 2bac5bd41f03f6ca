package wayfinder

// InjectMove queues a synthetic navigation command. Queued commands are
// consumed one per frame by Scene.Update, in place of keyboard input.
func (s *Scene) InjectMove(dir CompassDirection) {
	s.injectQueue = append(s.injectQueue, dir)
}

// InjectMoves queues several commands in order.
func (s *Scene) InjectMoves(dirs ...CompassDirection) {
	s.injectQueue = append(s.injectQueue, dirs...)
}

// processInjectedInput pops one queued command and applies it.
// Returns true if a command was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	dir := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if !s.MoveFocus(dir) {
		s.logger.Debug("injected move had no target", "dir", dir)
	}
	return true
}
