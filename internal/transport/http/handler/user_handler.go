package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"paranoid-users/internal/domain"
	"paranoid-users/internal/service"
	"paranoid-users/internal/transport/http/ez"
)

type UserHandler struct{ svc *service.UserService }

func NewUserHandler(svc *service.UserService) *UserHandler { return &UserHandler{svc: svc} }

type createIn struct {
	FirstName string `json:"firstName" binding:"required,notblank,max=255"`
	LastName  string `json:"lastName"  binding:"required,notblank,max=255"`
}

type idIn struct {
	ID string `uri:"id" binding:"required,max=64"`
}

type getAnyIn struct {
	ID          string `uri:"id" binding:"required,max=64"`
	WithDeleted bool   `form:"with_deleted"`
}

type idOut struct {
	ID string `json:"id"`
}

// MountAPI /api/v1/users：创建、列表（含软删）、详情、软删
func (h *UserHandler) MountAPI(api *gin.RouterGroup) {
	e := ez.New(api)

	ez.RegisterAction(e, ez.Action[createIn, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *createIn) (*domain.User, error) {
			u, err := h.svc.Create(c.Request.Context(), service.CreateUserInput{
				FirstName: in.FirstName,
				LastName:  in.LastName,
			})
			return u, mapErr(err)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, *service.ListResult]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*service.ListResult, error) {
			res, err := h.svc.List(c.Request.Context())
			return res, mapErr(err)
		},
	})

	ez.RegisterAction(e, ez.Action[idIn, *domain.User]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: ez.BindURI,
		Handler: func(c *gin.Context, in *idIn) (*domain.User, error) {
			u, err := h.svc.Get(c.Request.Context(), in.ID)
			return u, mapErr(err)
		},
	})

	ez.RegisterAction(e, ez.Action[idIn, idOut]{
		Method: http.MethodDelete,
		Path:   "/users/:id",
		Binder: ez.BindURI,
		Handler: func(c *gin.Context, in *idIn) (idOut, error) {
			if err := h.svc.SoftDelete(c.Request.Context(), in.ID); err != nil {
				return idOut{}, mapErr(err)
			}
			return idOut{ID: in.ID}, nil
		},
	})
}

// MountAdmin /admin/v1/users：含软删的详情、物理删除、恢复
func (h *UserHandler) MountAdmin(admin *gin.RouterGroup) {
	e := ez.New(admin)

	ez.RegisterAction(e, ez.Action[getAnyIn, *domain.User]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: ez.BindURIQuery,
		Auth:   true,
		Roles:  []string{"admin"},
		Handler: func(c *gin.Context, in *getAnyIn) (*domain.User, error) {
			get := h.svc.Get
			if in.WithDeleted {
				get = h.svc.GetAny
			}
			u, err := get(c.Request.Context(), in.ID)
			return u, mapErr(err)
		},
	})

	ez.RegisterAction(e, ez.Action[idIn, idOut]{
		Method: http.MethodDelete,
		Path:   "/users/:id/force",
		Binder: ez.BindURI,
		Auth:   true,
		Roles:  []string{"admin"},
		Handler: func(c *gin.Context, in *idIn) (idOut, error) {
			if err := h.svc.HardDelete(c.Request.Context(), in.ID); err != nil {
				return idOut{}, mapErr(err)
			}
			return idOut{ID: in.ID}, nil
		},
	})

	ez.RegisterAction(e, ez.Action[idIn, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users/:id/restore",
		Binder: ez.BindURI,
		Auth:   true,
		Roles:  []string{"admin"},
		Handler: func(c *gin.Context, in *idIn) (*domain.User, error) {
			u, err := h.svc.Restore(c.Request.Context(), in.ID)
			return u, mapErr(err)
		},
	})
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrUserNotFound):
		return ez.NotFound(domain.Message(err))
	case errors.Is(err, domain.ErrInvalidInput):
		return ez.BadRequest(domain.Message(err))
	default:
		return ez.Internal("db error", err)
	}
}
