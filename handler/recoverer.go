package handler

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
)

// Recoverer recovers from panics, reports them through the request's log
// entry and renders a 500 response with the error handler.
// It mirrors chi's middleware.Recoverer but keeps the site's error page.
func Recoverer(h ErrorHandler[Context]) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rvr)
				}

				stack := debug.Stack()
				if entry := middleware.GetLogEntry(r); entry != nil {
					entry.Panic(rvr, stack)
				}

				// The stack reaches the page only outside production, see NewErrorHandler.
				if r.Header.Get("Connection") != "Upgrade" {
					h(NewContext(w, r), fmt.Errorf("%w: %v\n%s", ErrPanic, rvr, stack))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
