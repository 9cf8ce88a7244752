package article

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/mshv/microblog/internal/errresponse"
	"github.com/mshv/microblog/internal/model"
	"github.com/mshv/microblog/internal/store"
)

type ctxKey int8

const ctxKeyArticle ctxKey = iota

// ArticleCtx middleware is used to load an Article object from the URL
// parameters passed through as the request. In case the Article could
// not be found, we stop here and return a 404.
func (rs *Resource) ArticleCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "articleID"), 10, 64)
		if err != nil {
			err = render.Render(w, r, errresponse.ErrNotFound(store.ErrArticleNotFound))
			if err != nil {
				rs.Log.Errorw(err.Error())
			}

			return
		}

		article, err := rs.Store.GetArticle(id)
		if err != nil {
			err = render.Render(w, r, errresponse.ErrNotFound(err))
			if err != nil {
				rs.Log.Errorw(err.Error())
			}

			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyArticle, article)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func articleFromCtx(ctx context.Context) *model.Article {
	return ctx.Value(ctxKeyArticle).(*model.Article)
}
