package articleresponse

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/mshv/microblog/internal/model"
)

const displayLayout = "2006-01-02 15:04:05"

// ArticleResponse is the response payload for the Article data model.
//
// Render is called before marshalling, so the stored timestamp is
// shaped into the display string on every read; the model keeps full
// precision.
type ArticleResponse struct {
	*model.Article

	CreatedAt string `json:"created_at"`
}

func NewArticleResponse(article *model.Article) *ArticleResponse {
	return &ArticleResponse{Article: article}
}

func (rd *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	rd.CreatedAt = rd.Article.CreatedAt.Format(displayLayout)

	return nil
}

func NewArticleListResponse(articles []*model.Article) []render.Renderer {
	list := []render.Renderer{}
	for _, article := range articles {
		list = append(list, NewArticleResponse(article))
	}

	return list
}
