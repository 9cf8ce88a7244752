package user

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

const ctxKeyUser ctxKey = iota

// UserCtx middleware is used to load a User object from the URL
// parameters passed through as the request. In case the User could not
// be found, we stop here and return a 404. A non-numeric id is treated
// the same as an unknown one.
func (rs *Resource) UserCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
		if err != nil {
			err = render.Render(w, r, errresponse.ErrNotFound(store.ErrUserNotFound))
			if err != nil {
				rs.Log.Errorw(err.Error())
			}

			return
		}

		user, err := rs.Store.GetUser(id)
		if err != nil {
			err = render.Render(w, r, errresponse.ErrNotFound(err))
			if err != nil {
				rs.Log.Errorw(err.Error())
			}

			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromCtx(ctx context.Context) *model.User {
	// Handlers below UserCtx can assume the user is on the context; the
	// recoverer middleware covers the remaining bug case.
	return ctx.Value(ctxKeyUser).(*model.User)
}
