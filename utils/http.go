package utils

import (
	"net/http"
	"time"
)

// HTTPClient is shared by everything that calls the identity provider.
var HTTPClient = &http.Client{
	Timeout: 30 * time.Second,
}
