package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DatastarRequestHeader is set by the Datastar client on every fetch.
	DatastarRequestHeader = "Datastar-Request"

	// DatastarAcceptHeader is the Accept header value that indicates a Datastar request.
	DatastarAcceptHeader = "text/event-stream"

	// DatastarQueryParam is the query parameter used by Datastar for signals on GET requests.
	DatastarQueryParam = "datastar"
)

// Patch mode aliases.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchPrepend = datastar.ElementPatchModePrepend
	PatchAppend  = datastar.ElementPatchModeAppend
)

// IsDatastar reports whether the request was issued by the Datastar client
// and expects a server-sent event stream in return.
func IsDatastar(r *http.Request) bool {
	if r.Header.Get(DatastarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DatastarAcceptHeader) {
		return true
	}
	return r.Method == http.MethodGet && r.URL.Query().Has(DatastarQueryParam)
}
