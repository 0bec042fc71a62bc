// Package view renders the application's HTML pages as templ components.
// Components are written directly against the templ runtime rather than
// generated from .templ sources, so no codegen step is needed.
package view

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/msette/notedrop/internal/domain"
)

// SignInPage renders the sign-in form. A non-empty message is shown above
// the form (wrong password, invalid token).
func SignInPage(message string) templ.Component {
	return page("Sign In", func(w io.Writer) error {
		if err := flash(w, message); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<h1>Sign In</h1>`+
			`<form method="post" action="/signin">`+
			`<label>Email <input type="email" name="email"></label>`+
			`<label>Password <input type="password" name="password"></label>`+
			`<button type="submit">Sign In</button>`+
			`</form>`)
		return err
	})
}

// SignUpPage renders the registration form.
func SignUpPage(message string) templ.Component {
	return page("Sign Up", func(w io.Writer) error {
		if err := flash(w, message); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<h1>Sign Up</h1>`+
			`<form method="post" action="/signup">`+
			`<label>Username <input type="text" name="username"></label>`+
			`<label>Email <input type="email" name="email"></label>`+
			`<label>Password <input type="password" name="password"></label>`+
			`<label>Age <input type="number" name="age"></label>`+
			`<button type="submit">Sign Up</button>`+
			`</form>`)
		return err
	})
}

// HomePage renders the signed-in view: a create form and the user's notes.
func HomePage(username string, notes []domain.Note) templ.Component {
	return page("Your Notes", func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Welcome, %s</h1>`, templ.EscapeString(username)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<form method="post" action="/signout">`+
			`<button type="submit">Sign Out</button></form>`+
			`<form method="post" action="/create">`+
			`<label>Title <input type="text" name="title"></label>`+
			`<label>Content <textarea name="content"></textarea></label>`+
			`<button type="submit">Save Note</button>`+
			`</form><ul>`); err != nil {
			return err
		}
		for _, note := range notes {
			id := strconv.FormatInt(note.ID, 10)
			if _, err := fmt.Fprintf(w,
				`<li><a href="/notes/%s">%s</a> <a href="/delete/%s">delete</a></li>`,
				id, templ.EscapeString(note.Title), id); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

// NotePage renders a single note.
func NotePage(title, content string) templ.Component {
	return page(title, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%s</h1><p>%s</p><a href="/">Back</a>`,
			templ.EscapeString(title), templ.EscapeString(content))
		return err
	})
}

func page(title string, body func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!doctype html><html lang="en"><head><meta charset="utf-8"><title>%s</title></head><body>`,
			templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func flash(w io.Writer, message string) error {
	if message == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="message">%s</p>`, templ.EscapeString(message))
	return err
}
