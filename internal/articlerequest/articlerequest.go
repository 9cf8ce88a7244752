package articlerequest

import "net/http"

// ArticleRequest is the request payload for the Article data model.
// Tags arrive as a single comma-separated string ("go,chi") and are
// split into a sequence by the handler before storage.
type ArticleRequest struct {
	UserID  int64  `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    string `json:"tags"`
}

// Bind on ArticleRequest will run after the unmarshalling is complete.
func (a *ArticleRequest) Bind(r *http.Request) error {
	return nil
}
