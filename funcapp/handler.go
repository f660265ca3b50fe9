package funcapp

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/loopwork-ai/mcpfunc/tool"
)

// invokeRequest is the envelope the host POSTs to the custom handler. The
// context payload arrives under Data[ArgName], usually as a JSON string.
type invokeRequest struct {
	Data     map[string]json.RawMessage `json:"Data"`
	Metadata map[string]json.RawMessage `json:"Metadata"`
}

// invokeResponse is the envelope returned to the host. ReturnValue carries
// the tool's result text, or the serialized structured error.
type invokeResponse struct {
	Outputs     map[string]any `json:"Outputs,omitempty"`
	Logs        []string       `json:"Logs,omitempty"`
	ReturnValue string         `json:"ReturnValue"`
}

// Handler returns the http.Handler implementing the host's custom-handler
// invocation contract: POST /{toolName} with an invocation envelope, one
// response envelope back. Tool failures are reported inside the envelope,
// never as transport faults.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, t := range a.tools {
		t := t
		mux.HandleFunc("/"+t.Name(), func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
				return
			}
			a.invoke(w, r, t)
		})
	}
	return mux
}

func (a *App) invoke(w http.ResponseWriter, r *http.Request, t *tool.Tool) {
	var req invokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid invocation envelope: %v", err), http.StatusBadRequest)
		return
	}

	payload := contextPayload(req)
	result, terr := t.Handle(r.Context(), payload)
	if terr != nil {
		a.logger.Debug("tool invocation failed", "tool", t.Name(), "kind", terr.Kind, "error", terr.Message)
		data, err := json.Marshal(terr)
		if err != nil {
			http.Error(w, "error encoding tool error", http.StatusInternalServerError)
			return
		}
		result = string(data)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(invokeResponse{ReturnValue: result}); err != nil {
		a.logger.Error("error encoding invocation response", "tool", t.Name(), "error", err)
	}
}

// contextPayload extracts the serialized context from the envelope. Hosts
// send it as a JSON string; a raw object is accepted as well.
func contextPayload(req invokeRequest) []byte {
	raw, ok := req.Data[ArgName]
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []byte(s)
	}
	return raw
}
