package journald

// Gracefully stops module (err always nil)
func (mod *OutModule) Close() (err error) {
	if mod == nil {
		return
	}
	if mod.sink != nil {
		mod.sink.CloseIdleConnections()
	}
	return
}
