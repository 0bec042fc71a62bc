package view_test

import (
	"context"
	"strings"
	"testing"

	"github.com/msette/notedrop/internal/domain"
	"github.com/msette/notedrop/internal/view"
)

func TestHomePage_EscapesUserContent(t *testing.T) {
	notes := []domain.Note{
		{ID: 1, Title: `<script>alert(1)</script>`, Content: "c"},
	}

	var b strings.Builder
	if err := view.HomePage(`<b>alice</b>`, notes).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	body := b.String()

	if strings.Contains(body, "<script>") {
		t.Fatal("note title must be escaped")
	}
	if strings.Contains(body, "<b>alice</b>") {
		t.Fatal("username must be escaped")
	}
	if !strings.Contains(body, "/notes/1") || !strings.Contains(body, "/delete/1") {
		t.Fatal("expected view and delete links for the note")
	}
}

func TestSignInPage_Message(t *testing.T) {
	var b strings.Builder
	if err := view.SignInPage("Incorrect password").Render(context.Background(), &b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	body := b.String()

	if !strings.Contains(body, "Incorrect password") {
		t.Fatal("expected flash message")
	}
	if !strings.Contains(body, `action="/signin"`) {
		t.Fatal("expected sign-in form")
	}
}

func TestNotePage_EscapesContent(t *testing.T) {
	var b strings.Builder
	if err := view.NotePage("T1", `<img src=x onerror=alert(1)>`).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(b.String(), "<img") {
		t.Fatal("note content must be escaped")
	}
}
