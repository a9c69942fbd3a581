// systemd-journal-remote output for the log pipeline
package journald

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

var bootIDPath = "/proc/sys/kernel/random/boot_id"

// Creates new journald output module. Tests connection. Returns nil nil if no url.
func NewOutput(endpoint string) (module *OutModule, err error) {
	if endpoint == "" {
		return
	}

	new := &OutModule{
		bootID: readBootID(),
	}

	transport := &http.Transport{
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		DisableKeepAlives:     false,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: -1, // Not supported by journal remote server
	}

	var baseURL *url.URL
	baseURL, err = url.Parse(endpoint)
	if err != nil {
		err = fmt.Errorf("invalid journald URL: %w", err)
		return
	}
	messagePublishPath := &url.URL{Path: "upload"} // Only path accepted by the remote server
	new.url = baseURL.ResolveReference(messagePublishPath).String()

	new.sink = &http.Client{
		Transport: transport,
		Timeout:   10 * time.Second,
	}

	testCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var req *http.Request
	req, err = http.NewRequestWithContext(
		testCtx,
		http.MethodPost,
		endpoint,
		bytes.NewReader(nil),
	)
	if err != nil {
		err = fmt.Errorf("failed to create test HTTP connection to journald: %w", err)
		return
	}
	req.Header.Set("Content-Type", "application/vnd.fdo.journal")

	var resp *http.Response
	resp, err = new.sink.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to test HTTP connection to journald: %w", err)
		return
	}
	resp.Body.Close()

	module = new
	return
}

// Boot ID of the running system, or a random one when unavailable (non-linux)
func readBootID() (id string) {
	data, err := os.ReadFile(bootIDPath)
	if err == nil {
		id = strings.ReplaceAll(strings.TrimSpace(string(data)), "-", "")
		if id != "" {
			return
		}
	}

	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	id = hex.EncodeToString(buf)
	return
}
