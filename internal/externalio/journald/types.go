package journald

import (
	"net/http"
)

type OutModule struct {
	sink   *http.Client
	url    string
	bootID string
}

// One journal export field, written in list order
type field struct {
	key string
	val string
}
