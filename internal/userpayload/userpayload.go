package userpayload

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/mshv/microblog/internal/model"
)

//--
// Request and Response payloads for the /users resource.
//
// The payloads embed the data model objects and keep field-level
// validation in the handlers, where the status code is decided.
//--

// UserRequest is the request payload for both create and update.
// Absent fields decode to "" and count as not provided on update.
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Bind on UserRequest will run after the unmarshalling is complete.
// Field presence checks live in the handlers so the error messages and
// status codes stay per-operation.
func (u *UserRequest) Bind(r *http.Request) error {
	return nil
}

type UserResponse struct {
	*model.User
}

func NewUserResponse(user *model.User) *UserResponse {
	return &UserResponse{User: user}
}

func (u *UserResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func NewUserListResponse(users []*model.User) []render.Renderer {
	list := []render.Renderer{}
	for _, user := range users {
		list = append(list, NewUserResponse(user))
	}

	return list
}
