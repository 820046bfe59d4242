package templates

import (
	"fmt"
	"html"
	"strings"
)

// RenderGenericEmail wraps plain text in the DevCamper layout. The body is
// escaped and its newlines become <br> tags.
func RenderGenericEmail(subject, bodyContent string) string {
	escaped := html.EscapeString(bodyContent)
	return layout(subject, "<p>"+strings.ReplaceAll(escaped, "\n", "<br>")+"</p>")
}

// layout renders content, which must already be safe HTML, inside the branded
// email frame
func layout(subject, content string) string {
	safeSubject := html.EscapeString(subject)

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>%s</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f6f8; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background: #343a40; padding: 32px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 22px; font-weight: 700; }
    .content { padding: 32px 30px; color: #212529; line-height: 1.6; font-size: 15px; }
    .token { display: block; word-break: break-all; background: #f1f3f5; border-radius: 6px; padding: 12px; font-family: monospace; }
    .footer { padding: 24px; text-align: center; color: #6c757d; font-size: 12px; border-top: 1px solid #e9ecef; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>%s</h1>
    </div>
    <div class="content">
      %s
    </div>
    <div class="footer">
      <p>&copy; DevCamper</p>
    </div>
  </div>
</body>
</html>`, safeSubject, safeSubject, content)
}
