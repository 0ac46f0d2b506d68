package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/a-h/templ"

	"github.com/hooly/hooly/core/handler"
	"github.com/hooly/hooly/core/i18n"
	"github.com/hooly/hooly/core/logger"
	"github.com/hooly/hooly/core/response"
	"github.com/hooly/hooly/core/session"
	"github.com/hooly/hooly/internal/account"
	"github.com/hooly/hooly/internal/form"
	"github.com/hooly/hooly/internal/guard"
	"github.com/hooly/hooly/internal/locale"
	"github.com/hooly/hooly/internal/view"
	"github.com/hooly/hooly/middleware"
)

// SessionTransport moves sessions between the store and the browser and
// switches them between anonymous and signed in.
type SessionTransport interface {
	middleware.SessionTransport[account.User]
	Authenticate(ctx handler.Context, sess session.Session[account.User], user account.User) (session.Session[account.User], error)
	Logout(ctx handler.Context, sess session.Session[account.User]) (session.Session[account.User], error)
}

// Handlers serves the portal pages.
type Handlers struct {
	auth     account.Authenticator
	sessions SessionTransport
	i18n     *i18n.I18n
	log      *slog.Logger
}

// NewHandlers wires the page handlers.
func NewHandlers(auth account.Authenticator, sessions SessionTransport, translations *i18n.I18n, log *slog.Logger) *Handlers {
	return &Handlers{
		auth:     auth,
		sessions: sessions,
		i18n:     translations,
		log:      log,
	}
}

// Login signs user in on the request's session. The token is rotated and
// the session middleware writes the new cookie.
func (h *Handlers) Login(ctx *Context, user account.User) error {
	sess, err := h.sessions.Authenticate(ctx, ctx.Session(), user)
	if err != nil {
		return err
	}
	middleware.SetSession(ctx, sess)
	return nil
}

// Logout turns the request's session back into an anonymous one.
func (h *Handlers) Logout(ctx *Context) error {
	sess, err := h.sessions.Logout(ctx, ctx.Session())
	if err != nil {
		return err
	}
	middleware.SetSession(ctx, sess)
	return nil
}

func (h *Handlers) translator(ctx context.Context) *i18n.Translator {
	if tr, ok := middleware.GetTranslator(ctx); ok {
		return tr
	}
	return i18n.NewTranslator(h.i18n, "", locale.Namespace)
}

// ShowForm renders an empty form of kind.
func (h *Handlers) ShowForm(kind form.Kind) handler.HandlerFunc[*Context] {
	return func(ctx *Context) handler.Response {
		tr := h.translator(ctx)
		return response.Templ(formPage(kind, form.New(kind, tr).State(), tr))
	}
}

// SubmitForm validates a posted form and runs its action. Success redirects
// to the dashboard; invalid input or a failed action re-renders the form with 422.
func (h *Handlers) SubmitForm(kind form.Kind) handler.HandlerFunc[*Context] {
	return func(ctx *Context) handler.Response {
		tr := h.translator(ctx)
		c, _, err := form.FromRequest(kind, tr, ctx.Request())
		if err != nil {
			return response.Error(response.ErrBadRequest.WithError(err))
		}

		err = c.Submit(ctx, h.action(ctx, c))
		switch {
		case err == nil:
			h.log.InfoContext(ctx, "visitor signed in",
				logger.Component("auth"), logger.Action(string(kind)), logger.Result("success"))
			return response.RedirectSeeOther(guard.DashboardPath)
		case errors.Is(err, form.ErrInvalid):
			return response.TemplWithStatus(formPage(kind, c.State(), tr), http.StatusUnprocessableEntity)
		case errors.Is(err, form.ErrSubmitFailed):
			h.log.WarnContext(ctx, "form submission failed",
				logger.Component("auth"), logger.Action(string(kind)), logger.Result("failure"), logger.Error(err))
			return response.TemplWithStatus(formPage(kind, c.State(), tr), http.StatusUnprocessableEntity)
		default:
			return response.Error(err)
		}
	}
}

// EditField answers an edit of one field with its emptied error slot.
// An edit always clears the field's error; other slots are left as displayed.
func (h *Handlers) EditField(kind form.Kind) handler.HandlerFunc[*Context] {
	return func(ctx *Context) handler.Response {
		_, field, err := form.FromRequest(kind, h.translator(ctx), ctx.Request())
		if err != nil {
			return response.Error(response.ErrBadRequest.WithError(err))
		}
		if !slices.Contains(kind.Fields(), field) {
			return response.Error(response.ErrBadRequest.WithMessage("unknown field " + field))
		}

		return response.Templ(view.FieldError(field, ""))
	}
}

// Dashboard shows the signed-in user.
func (h *Handlers) Dashboard(ctx *Context) handler.Response {
	return response.Templ(view.DashboardPage(ctx.Session().User, h.translator(ctx)))
}

// SignOut logs the visitor out and sends them to the login page.
func (h *Handlers) SignOut(ctx *Context) handler.Response {
	if err := h.Logout(ctx); err != nil {
		return response.Error(err)
	}
	h.log.InfoContext(ctx, "visitor signed out", logger.Component("auth"), logger.Action("logout"))
	return response.RedirectSeeOther(guard.LoginPath)
}

// NotFound applies the fallback guard to unknown paths.
func (h *Handlers) NotFound(*Context) handler.Response {
	return response.Redirect(guard.Fallback().Location())
}

// ErrorHandler renders failed requests as an HTML error page.
func (h *Handlers) ErrorHandler(ctx *Context, err error) {
	if w, ok := ctx.ResponseWriter().(interface{ Written() bool }); ok && w.Written() {
		return
	}

	httpErr := response.AsHTTPError(err)
	level := slog.LevelWarn
	if httpErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.log.Log(ctx, level, "request failed",
		logger.Component("http"), logger.StatusCode(httpErr.Status), logger.Error(err))

	response.Render(ctx, response.TemplWithStatus(
		view.ErrorPage(httpErr.Status, httpErr.Message, h.translator(ctx)), httpErr.Status))
}

func (h *Handlers) action(ctx *Context, c *form.Controller) form.Action {
	return func(actx context.Context) error {
		var (
			user account.User
			err  error
		)
		switch c.Kind() {
		case form.Register:
			user, err = h.auth.Register(actx, account.Registration{
				Email:         c.Value("email"),
				FoodTruckName: c.Value("foodTruckName"),
				Password:      c.Value("password"),
			})
		default:
			user, err = h.auth.Login(actx, account.Credentials{
				Email:    c.Value("email"),
				Password: c.Value("password"),
			})
		}
		if err != nil {
			return err
		}
		return h.Login(ctx, user)
	}
}

func formPage(kind form.Kind, state form.State, tr view.Translator) templ.Component {
	p := view.FormPage{Kind: kind, State: state, T: tr}
	if kind == form.Register {
		return view.RegisterPage(p)
	}
	return view.LoginPage(p)
}
