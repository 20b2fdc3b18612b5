package handler

import "net/http"

type emptyResponse struct{ status int }

func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty answers 204 No Content. Datastar treats it as "nothing to patch".
func Empty() Response { return emptyResponse{status: http.StatusNoContent} }
