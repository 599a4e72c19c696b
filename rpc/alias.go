package rpc

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
)

// methodAliases maps the method names used by the zksync SDKs to the names served by the zks service,
// which exposes every method with its first letter lowercased
var methodAliases = map[string]string{
	"zks_L1BatchNumber": "zks_l1BatchNumber",
	"zks_L1ChainId":     "zks_l1ChainId",
}

// NewMethodAliasHandler rewrites the aliased methods of single and batch requests before passing them to next
func NewMethodAliasHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}
		body, err := io.ReadAll(r.Body)
		_ = r.Body.Close()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		body = rewriteMethods(body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		r.ContentLength = int64(len(body))
		r.Header.Set("Content-Length", strconv.Itoa(len(body)))
		next.ServeHTTP(w, r)
	})
}

// NewAliasProxy forwards every request to the JSON-RPC server at target, with the aliased methods rewritten
func NewAliasProxy(target string) (http.Handler, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	return NewMethodAliasHandler(httputil.NewSingleHostReverseProxy(u)), nil
}

// rewriteMethods returns body untouched if it has no aliased method or is not valid JSON,
// the server answers the latter with the proper parse error
func rewriteMethods(body []byte) []byte {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var reqs []map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &reqs); err != nil {
			return body
		}
		changed := false
		for _, req := range reqs {
			changed = rewriteMethod(req) || changed
		}
		if !changed {
			return body
		}
		res, err := json.Marshal(reqs)
		if err != nil {
			return body
		}
		return res
	}

	var req map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &req); err != nil || !rewriteMethod(req) {
		return body
	}
	res, err := json.Marshal(req)
	if err != nil {
		return body
	}
	return res
}

func rewriteMethod(req map[string]json.RawMessage) bool {
	var method string
	if err := json.Unmarshal(req["method"], &method); err != nil {
		return false
	}
	alias, ok := methodAliases[method]
	if !ok {
		return false
	}
	req["method"], _ = json.Marshal(alias)
	return true
}
