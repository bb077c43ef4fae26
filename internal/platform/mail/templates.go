package mail

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

const verificationSubject = "Your Oblivion verification code"

var verificationText = texttemplate.Must(texttemplate.New("verification.txt").Parse(
	`Your verification code is {{.Code}}.

Enter it in Oblivion to activate your account. If you did not sign up, you can ignore this email.
`))

var verificationHTML = htmltemplate.Must(htmltemplate.New("verification.html").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<p>Your verification code is</p>
	<p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.Code}}</p>
	<p>Enter it in Oblivion to activate your account. If you did not sign up, you can ignore this email.</p>
</body>
</html>
`))

type verificationData struct {
	Code string
}

// renderVerification returns the text and HTML bodies for code.
func renderVerification(code string) (text, html string, err error) {
	data := verificationData{Code: code}

	var tb bytes.Buffer
	if err := verificationText.Execute(&tb, data); err != nil {
		return "", "", fmt.Errorf("failed to render text body: %w", err)
	}
	var hb bytes.Buffer
	if err := verificationHTML.Execute(&hb, data); err != nil {
		return "", "", fmt.Errorf("failed to render html body: %w", err)
	}
	return tb.String(), hb.String(), nil
}
