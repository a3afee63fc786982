package apperr

import (
	"net/http"

	"github.com/nextgencodex-com/Vengase-backend/pkg/httpres"
)

// HTTPError writes err as the API error envelope. Upstream causes are only
// attached as details outside production.
func HTTPError(w http.ResponseWriter, err error, dev bool) {
	status := HTTPStatus(err)
	var details interface{}
	if dev && status == http.StatusInternalServerError {
		details = err.Error()
	}
	httpres.Error(w, status, Message(err), details)
}
