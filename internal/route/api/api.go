// Package api defines the JSON endpoints backing the page widgets
package api

import (
	"encoding/json"
	"net/http"

	"github.com/ShadowWhisperer/MyStack/internal/prices"
	"github.com/ShadowWhisperer/MyStack/internal/route/util"
)

// HandlePrices serves the cached spot prices as JSON.
//
// With ?refresh=true a full fetch cycle runs before responding, which can
// take a few seconds with the per-metal pacing delay. Spot prices aren't
// user data, so no login is required.
func HandlePrices(service *prices.Service, writer http.ResponseWriter, request *http.Request) {
	var snapshot prices.Snapshot

	if request.URL.Query().Get("refresh") == "true" {
		snapshot = service.FetchAll(request.Context())
	} else {
		snapshot = service.Snapshot()
	}

	body, err := json.Marshal(snapshot)

	if err != nil {
		util.RespondInternalServerError(writer, err)

		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.Write(body)
}
