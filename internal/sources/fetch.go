package sources

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Fetch downloads the raw body of a remote source. Parsing is left to the
// per-format parser so local files and inline data go through the same path.
func Fetch(client *resty.Client, url string) ([]byte, error) {
	resp, err := client.R().Get(url)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("status %d", resp.StatusCode())
	}

	return resp.Body(), nil
}
