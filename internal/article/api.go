package article

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/mshv/microblog/internal/articlerequest"
	"github.com/mshv/microblog/internal/articleresponse"
	"github.com/mshv/microblog/internal/errresponse"
	"github.com/mshv/microblog/internal/store"
	"github.com/mshv/microblog/internal/validate"
)

var (
	errMissingFields  = errors.New("user_id, title, and content are required")
	errInvalidDateFmt = errors.New("Invalid date_after format. Use YYYY-MM-DD")
)

// Resource holds the handlers for the /articles routes.
type Resource struct {
	Store *store.Store
	Log   *zap.SugaredLogger
}

func (rs *Resource) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", rs.ListArticles)
	r.Post("/", rs.CreateArticle)

	r.Route("/{articleID}", func(r chi.Router) {
		r.Use(rs.ArticleCtx) // Load the *Article on the request context
		r.Get("/", rs.GetArticle)
	})

	return r
}

// CreateArticle persists the posted Article and returns it back to the
// client with created_at already shaped for display. The author must
// exist at creation time.
func (rs *Resource) CreateArticle(w http.ResponseWriter, r *http.Request) {
	data := &articlerequest.ArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		err = render.Render(w, r, errresponse.ErrInvalidRequest(err))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}

	if data.UserID == 0 || data.Title == "" || data.Content == "" {
		err := render.Render(w, r, errresponse.ErrInvalidRequest(errMissingFields))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}

	article, err := rs.Store.CreateArticle(data.UserID, data.Title, data.Content, validate.Tags(data.Tags))
	if err != nil {
		err = render.Render(w, r, errresponse.ErrNotFound(err))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}

	render.Status(r, http.StatusCreated)
	err = render.Render(w, r, articleresponse.NewArticleResponse(article))
	if err != nil {
		rs.Log.Errorw(err.Error())
	}
}

// ListArticles filters by exact tag match and by creation date. Both
// query parameters are optional and combine.
func (rs *Resource) ListArticles(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")

	var after *time.Time
	if s := r.URL.Query().Get("date_after"); s != "" {
		d, err := validate.Date(s)
		if err != nil {
			err = render.Render(w, r, errresponse.ErrInvalidRequest(errInvalidDateFmt))
			if err != nil {
				rs.Log.Errorw(err.Error())
			}

			return
		}
		after = &d
	}

	articles := rs.Store.ListArticles(tag, after)
	if err := render.RenderList(w, r, articleresponse.NewArticleListResponse(articles)); err != nil {
		err = render.Render(w, r, errresponse.ErrRender(err))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}
}

// GetArticle returns the specific Article loaded by the ArticleCtx
// middleware.
func (rs *Resource) GetArticle(w http.ResponseWriter, r *http.Request) {
	article := articleFromCtx(r.Context())

	if err := render.Render(w, r, articleresponse.NewArticleResponse(article)); err != nil {
		err = render.Render(w, r, errresponse.ErrRender(err))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}
}
