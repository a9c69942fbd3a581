package file

// Gracefully stops module
func (mod *OutModule) Close() (err error) {
	if mod == nil {
		return
	}
	if mod.sink != nil {
		err = mod.sink.Close()
	}
	return
}
