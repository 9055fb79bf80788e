package mailto

import (
	"fmt"
	"net/url"
	"strings"
)

type Message struct {
	Name     string
	Email    string
	Category string
	Subject  string
	Body     string
}

// Link builds a mailto URL for the given recipient. Spaces and newlines are
// percent-encoded, mail clients do not accept the '+' form.
func Link(to string, msg Message) string {
	subject := msg.Subject
	if msg.Category != "" {
		subject = fmt.Sprintf("[%s] %s", msg.Category, msg.Subject)
	}

	var body strings.Builder
	if msg.Name != "" {
		body.WriteString("From: " + msg.Name)
		if msg.Email != "" {
			body.WriteString(" <" + msg.Email + ">")
		}
		body.WriteString("\n\n")
	}
	body.WriteString(msg.Body)

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		to,
		encode(subject),
		encode(body.String()),
	)
}

func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
