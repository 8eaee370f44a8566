// internal/adapters/in/http/console/handler/admin_helpers.go
package consoleHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"voltmart/internal/adapters/out/commerce"
)

func writeAdminJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAdminErr(w http.ResponseWriter, code int, msg string) {
	writeAdminJSON(w, code, map[string]string{"error": strings.TrimSpace(msg)})
}

// writeAdminGatewayErr maps commerce client failures. The console is an
// operator tool, so the raw error text is acceptable in responses.
func writeAdminGatewayErr(w http.ResponseWriter, err error) {
	if errors.Is(err, commerce.ErrRemote) || errors.Is(err, commerce.ErrMalformed) {
		writeAdminErr(w, http.StatusBadGateway, err.Error())
		return
	}
	writeAdminErr(w, http.StatusInternalServerError, err.Error())
}

func readAdminJSON(r *http.Request, dst any) error {
	if dst == nil {
		return errors.New("dst is nil")
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)) // 1MB
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func adminBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func adminPathID(path string) int64 {
	id, err := strconv.ParseInt(path[strings.LastIndex(path, "/")+1:], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
