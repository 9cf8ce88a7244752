package user

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/mshv/microblog/internal/errresponse"
	"github.com/mshv/microblog/internal/store"
	"github.com/mshv/microblog/internal/userpayload"
	"github.com/mshv/microblog/internal/validate"
)

var (
	errMissingFields = errors.New("Name and email are required")
	errInvalidEmail  = errors.New("Invalid email format")
)

// Resource holds the handlers for the /users routes. The store is
// injected so tests can run against a fresh one.
type Resource struct {
	Store *store.Store
	Log   *zap.SugaredLogger
}

func (rs *Resource) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", rs.ListUsers)
	r.Post("/", rs.CreateUser)

	r.Route("/{userID}", func(r chi.Router) {
		r.Use(rs.UserCtx) // Load the *User on the request context
		r.Get("/", rs.GetUser)
		r.Put("/", rs.UpdateUser)
		r.Delete("/", rs.DeleteUser)
	})

	return r
}

// CreateUser persists the posted User and returns it back to the
// client as an acknowledgement.
func (rs *Resource) CreateUser(w http.ResponseWriter, r *http.Request) {
	data := &userpayload.UserRequest{}
	if err := render.Bind(r, data); err != nil {
		err = render.Render(w, r, errresponse.ErrInvalidRequest(err))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}

	if data.Name == "" || data.Email == "" {
		err := render.Render(w, r, errresponse.ErrInvalidRequest(errMissingFields))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}

	if !validate.Email(data.Email) {
		err := render.Render(w, r, errresponse.ErrInvalidRequest(errInvalidEmail))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}

	user, err := rs.Store.CreateUser(data.Name, data.Email)
	if err != nil {
		err = render.Render(w, r, errresponse.ErrConflict(err))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}

	render.Status(r, http.StatusCreated)
	err = render.Render(w, r, userpayload.NewUserResponse(user))
	if err != nil {
		rs.Log.Errorw(err.Error())
	}
}

func (rs *Resource) ListUsers(w http.ResponseWriter, r *http.Request) {
	if err := render.RenderList(w, r, userpayload.NewUserListResponse(rs.Store.ListUsers())); err != nil {
		err = render.Render(w, r, errresponse.ErrRender(err))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}
}

// GetUser returns the specific User loaded by the UserCtx middleware.
func (rs *Resource) GetUser(w http.ResponseWriter, r *http.Request) {
	user := userFromCtx(r.Context())

	if err := render.Render(w, r, userpayload.NewUserResponse(user)); err != nil {
		err = render.Render(w, r, errresponse.ErrRender(err))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}
}

// UpdateUser applies a partial update: fields absent from the payload
// (or empty) keep their current value.
func (rs *Resource) UpdateUser(w http.ResponseWriter, r *http.Request) {
	user := userFromCtx(r.Context())

	data := &userpayload.UserRequest{}
	if err := render.Bind(r, data); err != nil {
		err = render.Render(w, r, errresponse.ErrInvalidRequest(err))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}

	if data.Email != "" && !validate.Email(data.Email) {
		err := render.Render(w, r, errresponse.ErrInvalidRequest(errInvalidEmail))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}

	user, err := rs.Store.UpdateUser(user.ID, data.Name, data.Email)
	if err != nil {
		resp := errresponse.ErrConflict(err)
		if errors.Is(err, store.ErrUserNotFound) {
			resp = errresponse.ErrNotFound(err)
		}
		err = render.Render(w, r, resp)
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}

	err = render.Render(w, r, userpayload.NewUserResponse(user))
	if err != nil {
		rs.Log.Errorw(err.Error())
	}
}

// DeleteUser removes the user and cascades to every article whose
// user_id matches. Success is a bare 204.
func (rs *Resource) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user := userFromCtx(r.Context())

	if err := rs.Store.DeleteUser(user.ID); err != nil {
		err = render.Render(w, r, errresponse.ErrNotFound(err))
		if err != nil {
			rs.Log.Errorw(err.Error())
		}

		return
	}

	render.NoContent(w, r)
}
