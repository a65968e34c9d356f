package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// parseIDParam reads an integer path parameter.
func parseIDParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}
