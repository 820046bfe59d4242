package templates

import (
	"fmt"
	"html"
)

// PasswordResetSubject is the subject of the password reset email
const PasswordResetSubject = "Password reset token"

// RenderPasswordResetText returns the plain text body of the password reset email
func RenderPasswordResetText(resetURL string) string {
	return fmt.Sprintf("You are receiving this email because you (or someone else) has requested the reset of a password. Please make a PUT request to: \n\n %s", resetURL)
}

// RenderPasswordResetEmail generates the HTML for the password reset email
func RenderPasswordResetEmail(name, resetURL string) string {
	content := fmt.Sprintf(`<p>Hi %s,</p>
      <p>You are receiving this email because you (or someone else) has requested the reset of a password.
      Make a PUT request with your new password to:</p>
      <span class="token">%s</span>
      <p>The link expires in 10 minutes. If you did not request a reset you can ignore this email.</p>`,
		html.EscapeString(name), html.EscapeString(resetURL))
	return layout(PasswordResetSubject, content)
}
