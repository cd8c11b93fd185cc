package logger

// resetForTesting uninstalls the global dispatcher so each test can
// install its own. Only compiled into test binaries; production code
// has no way to replace an installed logger.
func resetForTesting() {
	installMu.Lock()
	defer installMu.Unlock()

	if l := installed.Load(); l != nil {
		_ = l.Close()
	}
	installed.Store(nil)
}
