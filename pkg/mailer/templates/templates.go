package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// WelcomeData feeds the welcome email sent after registration.
type WelcomeData struct {
	AppName  string
	Username string
}

var welcomeHTML = template.Must(template.New("welcome").Parse(`
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome to {{.AppName}}, {{.Username}}!</h2>
    <p>Your account is ready. Browse campgrounds, leave reviews, and share
    your own favorite spots.</p>
    <p>Happy camping,<br>The {{.AppName}} team</p>
  </body>
</html>
`))

// RenderWelcome renders subject, text and HTML bodies for the welcome email.
func RenderWelcome(data WelcomeData) (subject, text, html string, err error) {
	subject = fmt.Sprintf("Welcome to %s", data.AppName)
	text = fmt.Sprintf("Welcome to %s, %s! Your account is ready.", data.AppName, data.Username)
	var buf bytes.Buffer
	if err = welcomeHTML.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	return subject, text, buf.String(), nil
}
